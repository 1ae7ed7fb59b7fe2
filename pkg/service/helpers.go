package service

import (
	"fmt"
	"time"

	"github.com/unihub/cli/pkg/client"
	"github.com/unihub/cli/pkg/errors"
	"github.com/unihub/cli/pkg/session"
)

// ensureSession loads the stored session and attaches it to the HTTP
// client. Commands that talk to the API call this first.
func ensureSession() (*session.Session, error) {
	client.Init()

	sess, err := session.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if !sess.IsValid() {
		return nil, errors.SessionExpiredError()
	}

	client.SetSession(sess.SessionToken, sess.CSRFToken)
	return sess, nil
}

func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// formatTimestamp renders the server's ISO timestamps for display
func formatTimestamp(iso string) string {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("2006-01-02 15:04")
		}
	}
	return iso
}
