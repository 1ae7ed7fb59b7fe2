package service

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/unihub/cli/pkg/api"
	"github.com/unihub/cli/pkg/config"
	"github.com/unihub/cli/pkg/formatter"
	"github.com/unihub/cli/pkg/logger"
	"github.com/unihub/cli/pkg/output"
	"github.com/unihub/cli/pkg/state"
)

// NotificationService drives the notification feed: an infinite-scroll
// list with inline friend-request handling, mark-read (which the server
// models as deletion), and a polling badge watcher.
type NotificationService struct {
	feed *state.Feed[api.Notification]
}

// NewNotificationService creates a notification view with empty state
func NewNotificationService() *NotificationService {
	return &NotificationService{
		feed: state.NewFeed(func(n api.Notification) int { return n.ID }),
	}
}

// List loads up to pages notification pages and renders the merged feed
func (s *NotificationService) List(pages, perPage int, unreadOnly bool) error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	s.feed.Reset()

	unreadCount := 0
	for i := 0; i < pages; i++ {
		page, token, ok := s.feed.BeginLoad()
		if !ok {
			break
		}

		resp, err := api.GetNotifications(page, perPage, unreadOnly)
		if err != nil {
			s.feed.Fail(token)
			if page == 1 {
				return fmt.Errorf("failed to fetch notifications: %w", err)
			}
			formatter.PrintWarning("Could not load page %d: %v", page, err)
			break
		}

		unreadCount = resp.UnreadCount
		if _, ok := s.feed.Merge(token, resp.Notifications, resp.Pagination.HasNext); !ok {
			logger.Debug("Discarded stale notification response", "page", page)
		}
	}

	notifications := s.feed.Items()
	if len(notifications) == 0 {
		fmt.Println("No notifications.")
		return nil
	}

	if output.GetOutputFormat() != output.FormatText {
		return formatter.PrintObject(notifications, "")
	}

	fmt.Printf("\nNotifications (%d unread)\n\n", unreadCount)
	for i, notif := range notifications {
		s.displayNotification(i+1, notif)
	}

	if s.feed.HasMore() {
		fmt.Println("More notifications available. Increase --pages to load further.")
	}
	return nil
}

// MarkRead marks one notification as read and drops it from the feed
func (s *NotificationService) MarkRead(notificationID int) error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	if err := api.MarkNotificationRead(notificationID); err != nil {
		formatter.PrintError("Failed to mark as read: %v", err)
		return err
	}

	s.feed.Remove(notificationID)
	formatter.PrintSuccess("Notification dismissed")
	return nil
}

// MarkAllRead dismisses all unread notifications
func (s *NotificationService) MarkAllRead() error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	if err := api.MarkAllRead(); err != nil {
		formatter.PrintError("Failed to mark all as read: %v", err)
		return err
	}

	s.feed.Reset()
	formatter.PrintSuccess("All notifications dismissed")
	return nil
}

// UnreadCount shows the current badge count
func (s *NotificationService) UnreadCount() error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	count, err := api.GetUnreadCount()
	if err != nil {
		return fmt.Errorf("failed to fetch unread count: %w", err)
	}

	fmt.Printf("Unread notifications: %d\n", count)
	return nil
}

// AcceptRequest accepts a friend request directly from its notification.
// On success the notification is dismissed, mirroring the inline accept
// flow.
func (s *NotificationService) AcceptRequest(notificationID, requestID int) error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	if err := api.AcceptFriendRequest(requestID); err != nil {
		formatter.PrintError("Failed to accept request: %v", err)
		return err
	}

	if err := api.MarkNotificationRead(notificationID); err != nil {
		// Accept succeeded; a failed dismiss only leaves the entry visible
		logger.Warn("Could not dismiss notification", "id", notificationID, "error", err)
	}
	s.feed.Remove(notificationID)

	formatter.PrintSuccess("Friend request accepted")
	return nil
}

// DeclineRequest declines a friend request from its notification
func (s *NotificationService) DeclineRequest(notificationID, requestID int) error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	if err := api.DeclineFriendRequest(requestID); err != nil {
		formatter.PrintError("Failed to decline request: %v", err)
		return err
	}

	if err := api.MarkNotificationRead(notificationID); err != nil {
		logger.Warn("Could not dismiss notification", "id", notificationID, "error", err)
	}
	s.feed.Remove(notificationID)

	formatter.PrintSuccess("Friend request declined")
	return nil
}

// Watch polls the unread-count badge until interrupted, printing when
// the count changes.
func (s *NotificationService) Watch(ctx context.Context) error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	interval := time.Duration(config.GetInt("notifications.poll_interval")) * time.Second
	if interval <= 0 {
		interval = 30 * time.Second
	}

	formatter.PrintInfo("Watching notification badge (every %s). Press Ctrl+C to stop.", interval)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastCount := -1
	poll := func() {
		count, err := api.GetUnreadCount()
		if err != nil {
			logger.Warn("Badge poll failed", "error", err)
			return
		}
		if count != lastCount {
			timestamp := time.Now().Format("15:04:05")
			fmt.Printf("[%s] Unread notifications: %d\n", timestamp, count)
			lastCount = count
		}
	}

	poll()
	for {
		select {
		case <-ticker.C:
			poll()
		case <-sigChan:
			fmt.Println()
			formatter.PrintSuccess("Badge watcher stopped")
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *NotificationService) displayNotification(index int, notif api.Notification) {
	read := " "
	if !notif.IsRead {
		read = "*"
	}
	fmt.Printf("%d. [%s] %s (id %d)\n", index, read, notif.Message, notif.ID)
	fmt.Printf("   %s | %s\n", notif.Type, formatTimestamp(notif.CreatedAt))

	if notif.Type == "friend_request" {
		if requestID, ok := requestIDFromData(notif.Data); ok {
			fmt.Printf("   Respond: unihub-cli notifications accept %d --request %d\n", notif.ID, requestID)
		}
	}
	fmt.Println()
}

// requestIDFromData digs the friend request id out of a notification's
// data payload.
func requestIDFromData(data map[string]interface{}) (int, bool) {
	if data == nil {
		return 0, false
	}
	v, ok := data["request_id"]
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case float64:
		return int(id), true
	case int:
		return id, true
	default:
		return 0, false
	}
}
