package formatter

import (
	"testing"
)

func TestPrintSuccess(t *testing.T) {
	// Test that function doesn't panic
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("PrintSuccess panicked: %v", r)
		}
	}()
	PrintSuccess("test success message")
}

func TestPrintError(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("PrintError panicked: %v", r)
		}
	}()
	PrintError("test error message")
}

func TestPrintInfo(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("PrintInfo panicked: %v", r)
		}
	}()
	PrintInfo("test info message")
}

func TestPrintWarning(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("PrintWarning panicked: %v", r)
		}
	}()
	PrintWarning("test warning message")
}

func TestPrintKeyValue(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("PrintKeyValue panicked: %v", r)
		}
	}()
	PrintKeyValue(map[string]interface{}{
		"faculty": "CSE",
		"level":   "Junior",
	})
}

func TestPrintTable(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("PrintTable panicked: %v", r)
		}
	}()
	PrintTable([]string{"ID", "Name"}, [][]string{
		{"1", "Maria"},
		{"2", "Timur"},
	})
}
