package api

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/unihub/cli/pkg/client"
	"github.com/unihub/cli/pkg/config"
)

func setupAPITest(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	if err := config.Init(filepath.Join(t.TempDir(), "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client.ClearSession()
	client.SetBaseURL(srv.URL)
	return srv
}

// TestBatchFriendStatusDecoding covers the three value shapes the batch
// endpoint mixes in one map: bare string, object with request id, null.
func TestBatchFriendStatusDecoding(t *testing.T) {
	setupAPITest(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/friends/status/batch" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"success": true,
			"statuses": {
				"1": "friends",
				"2": {"status": "pending_received", "request_id": 55},
				"3": null,
				"4": {"status": "pending_sent"}
			}
		}`))
	})

	statuses, err := BatchFriendStatus([]int{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("BatchFriendStatus failed: %v", err)
	}

	if statuses[1].Status != "friends" {
		t.Errorf("User 1 status = %q, want friends", statuses[1].Status)
	}
	if statuses[2].Status != "pending_received" || statuses[2].RequestID != 55 {
		t.Errorf("User 2 entry = %+v, want pending_received/55", statuses[2])
	}
	if statuses[3].Status != "" {
		t.Errorf("User 3 status = %q, want empty for null", statuses[3].Status)
	}
	if statuses[4].Status != "pending_sent" {
		t.Errorf("User 4 status = %q, want pending_sent", statuses[4].Status)
	}
}

func TestBatchFriendStatusSizeLimit(t *testing.T) {
	if _, err := BatchFriendStatus(nil); err == nil {
		t.Error("Empty batch should be rejected locally")
	}

	ids := make([]int, 101)
	if _, err := BatchFriendStatus(ids); err == nil {
		t.Error("Batch over 100 ids should be rejected locally")
	}
}

// TestGetFriendStatusNull verifies a null status (no relationship)
// decodes to a nil pointer instead of an empty string.
func TestGetFriendStatusNull(t *testing.T) {
	setupAPITest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "status": null}`))
	})

	resp, err := GetFriendStatus(42)
	if err != nil {
		t.Fatalf("GetFriendStatus failed: %v", err)
	}
	if resp.Status != nil {
		t.Errorf("Status = %q, want nil", *resp.Status)
	}
}

func TestGetFriendStatusPending(t *testing.T) {
	setupAPITest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "status": "pending_received", "request_id": 9}`))
	})

	resp, err := GetFriendStatus(42)
	if err != nil {
		t.Fatalf("GetFriendStatus failed: %v", err)
	}
	if resp.Status == nil || *resp.Status != "pending_received" {
		t.Fatalf("Status = %v, want pending_received", resp.Status)
	}
	if resp.RequestID != 9 {
		t.Errorf("RequestID = %d, want 9", resp.RequestID)
	}
}

// TestSendFriendRequestConflict covers the duplicate-request error the
// server answers with extra context about an incoming request.
func TestSendFriendRequestConflict(t *testing.T) {
	setupAPITest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{
			"success": false,
			"error": "This user already sent you a request",
			"has_incoming": true,
			"request_id": 12
		}`))
	})

	_, err := SendFriendRequest(42)
	if err == nil {
		t.Fatal("Expected an error")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Error type = %T, want *APIError", err)
	}
	if !apiErr.HasIncoming {
		t.Error("HasIncoming not parsed from the error envelope")
	}
	if apiErr.RequestID != 12 {
		t.Errorf("RequestID = %d, want 12", apiErr.RequestID)
	}
}
