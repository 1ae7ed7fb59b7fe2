package state

import (
	"testing"
)

// TestParseFriendStatus validates that unknown server values degrade to
// the add-friend state instead of failing.
func TestParseFriendStatus(t *testing.T) {
	cases := []struct {
		in   string
		want FriendStatus
	}{
		{"friends", StatusFriends},
		{"pending_sent", StatusPendingSent},
		{"pending_received", StatusPendingReceived},
		{"", StatusNone},
		{"null", StatusNone},
		{"garbage", StatusNone},
	}

	for _, tc := range cases {
		if got := ParseFriendStatus(tc.in); got != tc.want {
			t.Errorf("ParseFriendStatus(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// TestFriendButton checks the status-to-button mapping used everywhere
// a student card is rendered.
func TestFriendButton(t *testing.T) {
	cases := []struct {
		status   FriendStatus
		label    string
		disabled bool
	}{
		{StatusFriends, "Friends", false},
		{StatusPendingSent, "Request Sent", true},
		{StatusPendingReceived, "Respond", false},
		{StatusNone, "Add Friend", false},
	}

	for _, tc := range cases {
		btn := FriendButton(tc.status)
		if btn.Label != tc.label {
			t.Errorf("FriendButton(%v).Label = %q, want %q", tc.status, btn.Label, tc.label)
		}
		if btn.Disabled != tc.disabled {
			t.Errorf("FriendButton(%v).Disabled = %v, want %v", tc.status, btn.Disabled, tc.disabled)
		}
	}

	// Only the pending-sent button is ever disabled
	for _, status := range []FriendStatus{StatusFriends, StatusPendingReceived, StatusNone} {
		if FriendButton(status).Disabled {
			t.Errorf("FriendButton(%v) should not be disabled", status)
		}
	}
}

func TestStatusCache(t *testing.T) {
	cache := NewStatusCache()

	// Miss returns the add-friend default
	entry, ok := cache.Get(42)
	if ok {
		t.Error("Expected cache miss for unknown user")
	}
	if entry.Status != StatusNone {
		t.Errorf("Miss should default to StatusNone, got %v", entry.Status)
	}

	cache.Set(42, StatusEntry{Status: StatusPendingReceived, RequestID: 7})
	entry, ok = cache.Get(42)
	if !ok {
		t.Fatal("Expected cache hit after Set")
	}
	if entry.Status != StatusPendingReceived || entry.RequestID != 7 {
		t.Errorf("Got %+v, want pending_received with request 7", entry)
	}

	cache.Invalidate(42)
	if _, ok := cache.Get(42); ok {
		t.Error("Expected miss after Invalidate")
	}
	if cache.Len() != 0 {
		t.Errorf("Len = %d after invalidating the only entry", cache.Len())
	}
}
