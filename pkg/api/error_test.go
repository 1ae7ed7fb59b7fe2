package api

import (
	"net/http"
	"testing"
)

// TestSoftFailureEnvelope verifies a 200 response carrying success=false
// is surfaced as an error, not a silent empty result.
func TestSoftFailureEnvelope(t *testing.T) {
	setupAPITest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error": "Not logged in"}`))
	})

	_, err := GetUnreadCount()
	if err == nil {
		t.Fatal("Expected an error for success=false body")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Error type = %T, want *APIError", err)
	}
	if apiErr.Message != "Not logged in" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

// TestHTTPErrorEnvelope verifies HTTP-level failures parse the error
// envelope when present and fall back to the raw body when not.
func TestHTTPErrorEnvelope(t *testing.T) {
	setupAPITest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"success": false, "error": "Upload limit reached", "retry_after": 3600, "limit_reached": true}`))
	})

	_, err := GetPhotoStats()
	if err == nil {
		t.Fatal("Expected an error")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Error type = %T, want *APIError", err)
	}
	if !IsRateLimited(apiErr) {
		t.Error("429 should report IsRateLimited")
	}
	if apiErr.RetryAfter != 3600 || !apiErr.LimitReached {
		t.Errorf("Rate limit context not parsed: %+v", apiErr)
	}
}

func TestErrorPredicates(t *testing.T) {
	cases := []struct {
		code  int
		check func(error) bool
		name  string
	}{
		{401, IsUnauthorized, "IsUnauthorized"},
		{403, IsForbidden, "IsForbidden"},
		{404, IsNotFound, "IsNotFound"},
		{429, IsRateLimited, "IsRateLimited"},
		{500, IsServerError, "IsServerError"},
		{502, IsServerError, "IsServerError"},
	}

	for _, tc := range cases {
		err := &APIError{StatusCode: tc.code, Message: "x"}
		if !tc.check(err) {
			t.Errorf("%s should match status %d", tc.name, tc.code)
		}
	}

	if IsUnauthorized(&APIError{StatusCode: 403}) {
		t.Error("IsUnauthorized should not match 403")
	}
	if IsServerError(&APIError{StatusCode: 404}) {
		t.Error("IsServerError should not match 404")
	}
}
