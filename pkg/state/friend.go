package state

// FriendStatus is the relationship between the current user and a
// counterpart. Unknown or empty server values degrade to StatusNone so a
// failed status fetch still renders an actionable "Add Friend" control.
type FriendStatus string

const (
	StatusNone            FriendStatus = "none"
	StatusPendingSent     FriendStatus = "pending_sent"
	StatusPendingReceived FriendStatus = "pending_received"
	StatusFriends         FriendStatus = "friends"
)

// ParseFriendStatus maps a server status string to a FriendStatus
func ParseFriendStatus(s string) FriendStatus {
	switch s {
	case string(StatusPendingSent):
		return StatusPendingSent
	case string(StatusPendingReceived):
		return StatusPendingReceived
	case string(StatusFriends):
		return StatusFriends
	default:
		return StatusNone
	}
}

// ButtonView is what a friend-action control renders as. It is a pure
// projection of FriendStatus; no other state participates.
type ButtonView struct {
	Label    string
	Icon     string
	Disabled bool
	Class    string
}

// FriendButton renders the friend-action control for a status
func FriendButton(status FriendStatus) ButtonView {
	switch status {
	case StatusFriends:
		return ButtonView{Label: "Friends", Icon: "user-check", Disabled: false, Class: "btn-friends"}
	case StatusPendingSent:
		return ButtonView{Label: "Request Sent", Icon: "clock", Disabled: true, Class: "btn-pending"}
	case StatusPendingReceived:
		return ButtonView{Label: "Respond", Icon: "reply", Disabled: false, Class: "btn-respond"}
	default:
		return ButtonView{Label: "Add Friend", Icon: "user-plus", Disabled: false, Class: "btn-add"}
	}
}

// StatusEntry couples a status with the pending request id, when one exists
type StatusEntry struct {
	Status    FriendStatus
	RequestID int
}

// StatusCache is a per-view friend-status cache keyed by counterpart user
// id. It is only invalidated by explicit re-fetch or by a local update
// after a successful action.
type StatusCache struct {
	entries map[int]StatusEntry
}

// NewStatusCache creates an empty status cache
func NewStatusCache() *StatusCache {
	return &StatusCache{entries: make(map[int]StatusEntry)}
}

// Get returns the cached entry for a user; missing users read as StatusNone
func (c *StatusCache) Get(userID int) (StatusEntry, bool) {
	entry, ok := c.entries[userID]
	if !ok {
		return StatusEntry{Status: StatusNone}, false
	}
	return entry, true
}

// Set stores an entry for a user
func (c *StatusCache) Set(userID int, entry StatusEntry) {
	c.entries[userID] = entry
}

// Invalidate drops a user's cached entry
func (c *StatusCache) Invalidate(userID int) {
	delete(c.entries, userID)
}

// Len returns the number of cached entries
func (c *StatusCache) Len() int {
	return len(c.entries)
}
