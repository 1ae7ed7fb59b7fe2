package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/unihub/cli/pkg/config"
)

func initTestConfig(t *testing.T) {
	t.Helper()
	if err := config.Init(filepath.Join(t.TempDir(), "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	initTestConfig(t)

	sess := &Session{
		UserID:       42,
		Name:         "Maria",
		Surname:      "Kim",
		SessionToken: "tok-abc",
		CSRFToken:    "csrf-xyz",
		Faculty:      "CSE",
		FacultyGroup: "SOCIE",
		ExpiresAt:    time.Now().Add(24 * time.Hour),
	}

	if err := Save(sess); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Load returned nil for a saved session")
	}
	if loaded.UserID != 42 || loaded.SessionToken != "tok-abc" || loaded.CSRFToken != "csrf-xyz" {
		t.Errorf("Loaded session = %+v", loaded)
	}
	if loaded.FacultyGroup != "SOCIE" {
		t.Errorf("FacultyGroup = %q, want SOCIE", loaded.FacultyGroup)
	}
	if !loaded.IsValid() {
		t.Error("Fresh session should be valid")
	}
}

func TestLoadMissingSession(t *testing.T) {
	initTestConfig(t)

	sess, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if sess != nil {
		t.Errorf("Load = %+v, want nil when no session exists", sess)
	}
}

func TestDelete(t *testing.T) {
	initTestConfig(t)

	if err := Save(&Session{UserID: 1, SessionToken: "x"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := Delete(); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	sess, err := Load()
	if err != nil || sess != nil {
		t.Errorf("Load after Delete = (%+v, %v), want (nil, nil)", sess, err)
	}

	// Deleting again is not an error
	if err := Delete(); err != nil {
		t.Errorf("Second Delete failed: %v", err)
	}
}

func TestIsValid(t *testing.T) {
	var nilSess *Session
	if nilSess.IsValid() {
		t.Error("Nil session should be invalid")
	}

	if (&Session{}).IsValid() {
		t.Error("Session without a token should be invalid")
	}

	expired := &Session{SessionToken: "x", ExpiresAt: time.Now().Add(-time.Minute)}
	if expired.IsValid() {
		t.Error("Expired session should be invalid")
	}

	open := &Session{SessionToken: "x"}
	if !open.IsValid() {
		t.Error("Session without expiry should be valid")
	}
}
