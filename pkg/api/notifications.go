package api

import (
	"fmt"

	"github.com/unihub/cli/pkg/client"
	"github.com/unihub/cli/pkg/logger"
)

// NotificationListResponse is the paginated notification feed
type NotificationListResponse struct {
	Success       bool           `json:"success"`
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
	Pagination    Pagination     `json:"pagination"`
}

// GetNotifications retrieves notifications with pagination
func GetNotifications(page, perPage int, unreadOnly bool) (*NotificationListResponse, error) {
	logger.Debug("Fetching notifications", "page", page, "unread_only", unreadOnly)

	params := map[string]string{
		"page":     fmt.Sprintf("%d", page),
		"per_page": fmt.Sprintf("%d", perPage),
	}
	if unreadOnly {
		params["unread_only"] = "true"
	}

	var response NotificationListResponse

	resp, err := client.GetClient().
		R().
		SetQueryParams(params).
		SetResult(&response).
		Get("/api/notifications")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// GetUnreadCount retrieves the count of unread notifications
func GetUnreadCount() (int, error) {
	logger.Debug("Fetching unread notification count")

	var response struct {
		Success     bool `json:"success"`
		UnreadCount int  `json:"unread_count"`
	}

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get("/api/notifications/unread-count")

	if err := CheckResponse(resp, err); err != nil {
		return 0, err
	}

	return response.UnreadCount, nil
}

// MarkNotificationRead marks a notification as read. The server models
// "read" as deletion, so the entry is gone from subsequent fetches.
func MarkNotificationRead(notificationID int) error {
	logger.Debug("Marking notification as read", "notification_id", notificationID)

	resp, err := client.GetClient().
		R().
		Post(fmt.Sprintf("/api/notifications/%d/read", notificationID))

	return CheckResponse(resp, err)
}

// MarkAllRead deletes all unread notifications
func MarkAllRead() error {
	logger.Debug("Marking all notifications as read")

	resp, err := client.GetClient().
		R().
		Post("/api/notifications/read-all")

	return CheckResponse(resp, err)
}
