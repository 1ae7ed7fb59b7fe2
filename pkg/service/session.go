package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/unihub/cli/pkg/api"
	"github.com/unihub/cli/pkg/client"
	"github.com/unihub/cli/pkg/formatter"
	"github.com/unihub/cli/pkg/logger"
	"github.com/unihub/cli/pkg/prompter"
	"github.com/unihub/cli/pkg/session"
)

// SessionService stores and inspects the page-issued session. Token and
// CSRF issuance happen elsewhere (the web login flow); this only persists
// what that flow produced.
type SessionService struct{}

// NewSessionService creates a new session service
func NewSessionService() *SessionService {
	return &SessionService{}
}

// Login prompts for the session parameters and verifies them against the
// profile endpoint before saving.
func (s *SessionService) Login() error {
	userIDStr, err := prompter.PromptString("User ID: ")
	if err != nil {
		return err
	}
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		return fmt.Errorf("user id must be a number: %s", userIDStr)
	}

	sessionToken, err := prompter.PromptSecret("Session token: ")
	if err != nil {
		return err
	}

	csrfToken, err := prompter.PromptSecret("CSRF token: ")
	if err != nil {
		return err
	}

	client.Init()
	client.SetSession(sessionToken, csrfToken)

	// Verify the session works before persisting it
	profile, err := api.GetMyProfile()
	if err != nil {
		formatter.PrintError("Session check failed: %v", err)
		return err
	}

	sess := &session.Session{
		UserID:       userID,
		Name:         profile.Name,
		Surname:      profile.Surname,
		SessionToken: sessionToken,
		CSRFToken:    csrfToken,
		Faculty:      profile.Faculty,
		FacultyGroup: api.FacultyGroup(profile.Faculty),
		ExpiresAt:    time.Now().Add(24 * time.Hour),
	}

	if err := session.Save(sess); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	logger.Info("Session saved", "user_id", userID)
	formatter.PrintSuccess("Logged in as %s %s (%s)", profile.Name, profile.Surname, profile.Faculty)
	return nil
}

// Logout deletes the stored session
func (s *SessionService) Logout() error {
	if err := session.Delete(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	client.ClearSession()
	formatter.PrintSuccess("Logged out")
	return nil
}

// Status shows the stored session state
func (s *SessionService) Status() error {
	sess, err := session.Load()
	if err != nil {
		return err
	}

	if sess == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	fmt.Printf("User:    %s %s (id %d)\n", sess.Name, sess.Surname, sess.UserID)
	if sess.Faculty != "" {
		fmt.Printf("Faculty: %s (%s board)\n", sess.Faculty, sess.FacultyGroup)
	}
	if sess.IsValid() {
		formatter.PrintSuccess("Session valid until %s", sess.ExpiresAt.Format("2006-01-02 15:04"))
	} else {
		formatter.PrintWarning("Session expired")
	}
	return nil
}
