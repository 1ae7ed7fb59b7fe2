package output

import (
	"strings"
	"testing"
)

func TestGetOutputFormat(t *testing.T) {
	format := GetOutputFormat()
	if format != FormatJSON && format != FormatText && format != FormatTable {
		t.Errorf("Invalid output format: %v", format)
	}
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		isValid bool
	}{
		{"json", true},
		{"text", true},
		{"table", true},
		{"invalid", false},
	}

	for _, tt := range tests {
		result := ValidateOutputFormat(tt.format)
		if result != tt.isValid {
			t.Errorf("ValidateOutputFormat(%s): got %v, want %v", tt.format, result, tt.isValid)
		}
	}
}

func TestPrintFunctions_NoNilPointers(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Print function panicked: %v", r)
		}
	}()

	data := map[string]interface{}{
		"name":    "test",
		"user_id": 123,
		"tags":    []string{"a", "b"},
	}

	Print("Test Data", data)
	PrintRecord("Record", data)
	PrintSuccess("Operation completed")
	PrintError("Operation failed")

	items := []map[string]interface{}{
		{"name": "item1", "user_id": 1},
		{"name": "item2", "user_id": 2},
	}
	PrintList("Items", items, []string{"name", "user_id"})
}

func TestFormatAsJSON(t *testing.T) {
	out, err := FormatAsJSON(map[string]int{"likes_count": 7})
	if err != nil {
		t.Fatalf("FormatAsJSON failed: %v", err)
	}
	if !strings.Contains(out, `"likes_count":7`) {
		t.Errorf("FormatAsJSON = %s", out)
	}
}

func TestFormatAsPrettyJSON(t *testing.T) {
	out, err := FormatAsPrettyJSON(map[string]string{"faculty": "ICE"})
	if err != nil {
		t.Fatalf("FormatAsPrettyJSON failed: %v", err)
	}
	if !strings.Contains(out, "\n") || !strings.Contains(out, `"faculty": "ICE"`) {
		t.Errorf("FormatAsPrettyJSON = %s", out)
	}
}
