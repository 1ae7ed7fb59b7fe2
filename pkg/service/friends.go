package service

import (
	"fmt"
	"strconv"

	"github.com/unihub/cli/pkg/api"
	"github.com/unihub/cli/pkg/formatter"
	"github.com/unihub/cli/pkg/logger"
	"github.com/unihub/cli/pkg/output"
	"github.com/unihub/cli/pkg/state"
)

// FriendService drives the friend-action flow: status checks, requests,
// accept/decline, and removal. Every mutation is optimistic against the
// local status cache and reverted when the server disagrees.
type FriendService struct {
	statuses *state.StatusCache
}

// NewFriendService creates a new friend service
func NewFriendService() *FriendService {
	return &FriendService{statuses: state.NewStatusCache()}
}

// Status shows the friendship status with another user and the control
// it renders as.
func (s *FriendService) Status(userID int) error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	resp, err := api.GetFriendStatus(userID)
	if err != nil {
		// Unknown status degrades to the default control
		formatter.PrintWarning("Could not fetch status: %v", err)
		displayFriendButton(state.StatusNone)
		return nil
	}

	status := state.StatusNone
	if resp.Status != nil {
		status = state.ParseFriendStatus(*resp.Status)
	}
	s.statuses.Set(userID, state.StatusEntry{Status: status, RequestID: resp.RequestID})

	fmt.Printf("Status with user %d: %s\n", userID, status)
	displayFriendButton(status)
	return nil
}

// Add sends a friend request. The cached status moves to pending_sent
// immediately and reverts if the server refuses.
func (s *FriendService) Add(userID int) error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	entry, _ := s.statuses.Get(userID)
	action := state.NewOptimistic(entry.Status)
	if err := action.Begin(state.StatusPendingSent); err != nil {
		return err
	}
	s.statuses.Set(userID, state.StatusEntry{Status: action.Value()})

	resp, err := api.SendFriendRequest(userID)
	if err != nil {
		// The server can refuse with a more accurate status than the
		// one we guessed: already sent, or an incoming request exists.
		if apiErr, ok := err.(*api.APIError); ok {
			switch {
			case apiErr.HasIncoming:
				action.Confirm(state.StatusPendingReceived)
				s.statuses.Set(userID, state.StatusEntry{Status: action.Value(), RequestID: apiErr.RequestID})
				formatter.PrintInfo("This user already sent you a request. Accept it with: unihub-cli friends accept %d", apiErr.RequestID)
				return nil
			case apiErr.Status == string(state.StatusPendingSent):
				action.Confirm(state.StatusPendingSent)
				s.statuses.Set(userID, state.StatusEntry{Status: action.Value()})
				formatter.PrintInfo("Friend request already sent")
				return nil
			}
		}

		reverted := action.Revert()
		s.statuses.Set(userID, state.StatusEntry{Status: reverted})
		formatter.PrintError("Failed to send friend request: %v", err)
		return err
	}

	action.Confirm(state.ParseFriendStatus(resp.Status))
	s.statuses.Set(userID, state.StatusEntry{Status: action.Value()})
	logger.Info("Friend request sent", "to_user_id", userID)
	formatter.PrintSuccess("Friend request sent")
	displayFriendButton(action.Value())
	return nil
}

// Accept accepts a pending friend request by request id
func (s *FriendService) Accept(requestID int) error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	if err := api.AcceptFriendRequest(requestID); err != nil {
		formatter.PrintError("Failed to accept request: %v", err)
		return err
	}

	formatter.PrintSuccess("Friend request accepted")
	return nil
}

// Decline declines a pending friend request by request id
func (s *FriendService) Decline(requestID int) error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	if err := api.DeclineFriendRequest(requestID); err != nil {
		formatter.PrintError("Failed to decline request: %v", err)
		return err
	}

	formatter.PrintSuccess("Friend request declined")
	return nil
}

// Remove removes a friend. The cached status moves to none immediately
// and reverts on failure.
func (s *FriendService) Remove(userID int) error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	entry, _ := s.statuses.Get(userID)
	action := state.NewOptimistic(entry.Status)
	if err := action.Begin(state.StatusNone); err != nil {
		return err
	}
	s.statuses.Set(userID, state.StatusEntry{Status: action.Value()})

	if err := api.RemoveFriend(userID); err != nil {
		reverted := action.Revert()
		s.statuses.Set(userID, state.StatusEntry{Status: reverted})
		formatter.PrintError("Failed to remove friend: %v", err)
		return err
	}

	action.Confirm(state.StatusNone)
	s.statuses.Set(userID, state.StatusEntry{Status: action.Value()})
	formatter.PrintSuccess("Friend removed")
	return nil
}

// List displays a user's friends. userID 0 means the current user.
func (s *FriendService) List(page, perPage, userID int) error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	resp, err := api.GetFriends(page, perPage, userID)
	if err != nil {
		return fmt.Errorf("failed to fetch friends: %w", err)
	}

	if len(resp.Friends) == 0 {
		fmt.Println("No friends yet.")
		return nil
	}

	switch output.GetOutputFormat() {
	case output.FormatJSON:
		return formatter.PrintObject(resp, "")
	case output.FormatTable:
		rows := make([][]string, 0, len(resp.Friends))
		for _, friend := range resp.Friends {
			rows = append(rows, []string{
				strconv.Itoa(friend.UserID),
				friend.Name + " " + friend.Surname,
				friend.Faculty,
				friend.Level,
				formatTimestamp(friend.FriendshipSince),
			})
		}
		formatter.PrintTable([]string{"ID", "Name", "Faculty", "Level", "Since"}, rows)
		return nil
	}

	fmt.Printf("\nFriends\n\n")
	for i, friend := range resp.Friends {
		fmt.Printf("%d. %s %s (id %d)\n", i+1, friend.Name, friend.Surname, friend.UserID)
		fmt.Printf("   %s | %s\n", friend.Faculty, friend.Level)
		fmt.Printf("   Friends since: %s\n\n", formatTimestamp(friend.FriendshipSince))
	}
	fmt.Printf("Showing %d of %d friends (Page %d of %d)\n\n",
		len(resp.Friends), resp.Pagination.Total, resp.Pagination.Page, resp.Pagination.Pages)
	return nil
}

func displayFriendButton(status state.FriendStatus) {
	btn := state.FriendButton(status)
	enabled := "enabled"
	if btn.Disabled {
		enabled = "disabled"
	}
	fmt.Printf("Action: [%s] (%s, %s)\n", btn.Label, btn.Icon, enabled)
}
