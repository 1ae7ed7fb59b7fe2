package api

import (
	"fmt"

	json "github.com/json-iterator/go"
	"github.com/unihub/cli/pkg/client"
	"github.com/unihub/cli/pkg/logger"
)

// FriendStatusResponse is the single-user status check result. Status is
// nil when there is no relationship at all.
type FriendStatusResponse struct {
	Success   bool    `json:"success"`
	Status    *string `json:"status"`
	RequestID int     `json:"request_id,omitempty"`
}

// FriendStatusEntry is one entry of the batch status map
type FriendStatusEntry struct {
	Status    string `json:"status"`
	RequestID int    `json:"request_id,omitempty"`
}

// FriendActionResponse is returned by the request/accept/decline endpoints
type FriendActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Status  string `json:"status,omitempty"`
}

// FriendListResponse is the paginated friends list
type FriendListResponse struct {
	Success    bool       `json:"success"`
	Friends    []Friend   `json:"friends"`
	Pagination Pagination `json:"pagination"`
}

// GetFriendStatus retrieves friendship status with another user
func GetFriendStatus(userID int) (*FriendStatusResponse, error) {
	logger.Debug("Fetching friend status", "user_id", userID)

	var response FriendStatusResponse

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get(fmt.Sprintf("/api/friends/status/%d", userID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// BatchFriendStatus checks status for up to 100 users at once. The server
// encodes each entry as either a bare "friends" string, an object with
// status and request_id for pending relations, or null.
func BatchFriendStatus(userIDs []int) (map[int]FriendStatusEntry, error) {
	logger.Debug("Batch checking friend statuses", "count", len(userIDs))

	if len(userIDs) == 0 || len(userIDs) > 100 {
		return nil, fmt.Errorf("batch status requires 1-100 user ids, got %d", len(userIDs))
	}

	resp, err := client.GetClient().
		R().
		SetBody(map[string]interface{}{"user_ids": userIDs}).
		Post("/api/friends/status/batch")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var raw struct {
		Success  bool                       `json:"success"`
		Statuses map[string]json.RawMessage `json:"statuses"`
	}
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return nil, err
	}

	statuses := make(map[int]FriendStatusEntry, len(raw.Statuses))
	for key, msg := range raw.Statuses {
		var id int
		if _, err := fmt.Sscanf(key, "%d", &id); err != nil {
			continue
		}

		var asString string
		if err := json.Unmarshal(msg, &asString); err == nil {
			statuses[id] = FriendStatusEntry{Status: asString}
			continue
		}

		var asEntry FriendStatusEntry
		if err := json.Unmarshal(msg, &asEntry); err == nil && asEntry.Status != "" {
			statuses[id] = asEntry
			continue
		}

		// null means no relationship
		statuses[id] = FriendStatusEntry{}
	}

	return statuses, nil
}

// SendFriendRequest sends a friend request to another user
func SendFriendRequest(toUserID int) (*FriendActionResponse, error) {
	logger.Debug("Sending friend request", "to_user_id", toUserID)

	var response FriendActionResponse

	resp, err := client.GetClient().
		R().
		SetBody(map[string]interface{}{"to_user_id": toUserID}).
		SetResult(&response).
		Post("/api/friends/request")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// AcceptFriendRequest accepts a pending friend request
func AcceptFriendRequest(requestID int) error {
	logger.Debug("Accepting friend request", "request_id", requestID)

	resp, err := client.GetClient().
		R().
		Post(fmt.Sprintf("/api/friends/accept/%d", requestID))

	return CheckResponse(resp, err)
}

// DeclineFriendRequest declines a pending friend request
func DeclineFriendRequest(requestID int) error {
	logger.Debug("Declining friend request", "request_id", requestID)

	resp, err := client.GetClient().
		R().
		Post(fmt.Sprintf("/api/friends/decline/%d", requestID))

	return CheckResponse(resp, err)
}

// RemoveFriend removes a friendship (bidirectional)
func RemoveFriend(userID int) error {
	logger.Debug("Removing friend", "user_id", userID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/friends/%d", userID))

	return CheckResponse(resp, err)
}

// GetFriends retrieves a user's friends list with pagination.
// userID 0 means the current user.
func GetFriends(page, perPage, userID int) (*FriendListResponse, error) {
	logger.Debug("Fetching friends", "page", page, "user_id", userID)

	params := map[string]string{
		"page":     fmt.Sprintf("%d", page),
		"per_page": fmt.Sprintf("%d", perPage),
	}
	if userID > 0 {
		params["user_id"] = fmt.Sprintf("%d", userID)
	}

	var response FriendListResponse

	resp, err := client.GetClient().
		R().
		SetQueryParams(params).
		SetResult(&response).
		Get("/api/friends")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}
