package session

import (
	"encoding/json"
	"os"
	"time"

	"github.com/unihub/cli/pkg/config"
)

// Session mirrors the globals a server-rendered page would inject:
// the current user id, the session cookie, and the CSRF token that
// every mutating request must carry.
type Session struct {
	UserID       int       `json:"user_id"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	SessionToken string    `json:"session_token"`
	CSRFToken    string    `json:"csrf_token"`
	Faculty      string    `json:"faculty,omitempty"`
	FacultyGroup string    `json:"faculty_group,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// IsValid reports whether the session exists and has not expired
func (s *Session) IsValid() bool {
	if s == nil || s.SessionToken == "" {
		return false
	}
	if s.ExpiresAt.IsZero() {
		return true
	}
	return time.Now().Before(s.ExpiresAt)
}

// Load loads the session from disk
func Load() (*Session, error) {
	path := config.GetSessionPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // No session yet
		}
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}

	return &sess, nil
}

// Save saves the session to disk
func Save(sess *Session) error {
	path := config.GetSessionPath()

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}

	// Owner read/write only
	return os.WriteFile(path, data, 0600)
}

// Delete deletes the session from disk
func Delete() error {
	path := config.GetSessionPath()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
