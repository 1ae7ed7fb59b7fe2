package service

import (
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/unihub/cli/pkg/config"
)

// TestSearchInputCoalesces verifies rapid queries collapse into one
// dispatched search carrying the latest text, and that a short query
// cancels the pending dispatch and clears search mode.
func TestSearchInputCoalesces(t *testing.T) {
	var searches int64
	var mu sync.Mutex
	var lastQuery string

	setupServiceTest(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/search":
			atomic.AddInt64(&searches, 1)
			mu.Lock()
			lastQuery = r.URL.Query().Get("q")
			mu.Unlock()
			w.Write([]byte(`{"success": true, "students": [{"user_id": 7, "name": "Alina", "surname": "Petrova", "faculty": "CSE", "level": "Junior"}], "total": 1}`))
		case "/api/friends/status/batch":
			w.Write([]byte(`{"success": true, "statuses": {"7": null}}`))
		default:
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
	config.Override("search.debounce_ms", 30)

	svc := NewDirectoryService()
	svc.SearchInput("al")
	svc.SearchInput("ali")
	svc.SearchInput("alin")
	time.Sleep(200 * time.Millisecond)

	if got := atomic.LoadInt64(&searches); got != 1 {
		t.Errorf("Dispatched %d searches, want 1", got)
	}
	mu.Lock()
	if lastQuery != "alin" {
		t.Errorf("Dispatched query = %q, want %q", lastQuery, "alin")
	}
	mu.Unlock()
	if !svc.feed.InSearchMode() {
		t.Error("Feed should be in search mode after a dispatched search")
	}

	svc.SearchInput("a")
	if svc.feed.InSearchMode() {
		t.Error("Short query should clear search mode")
	}
	time.Sleep(100 * time.Millisecond)
	if got := atomic.LoadInt64(&searches); got != 1 {
		t.Errorf("Short query dispatched a search, total %d, want 1", got)
	}
}

// TestBrowseHonorsJSONOutput verifies --output json renders the grid as
// machine-readable JSON instead of the text cards.
func TestBrowseHonorsJSONOutput(t *testing.T) {
	setupServiceTest(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/students":
			w.Write([]byte(`{"success": true, "students": [{"user_id": 7, "name": "Alina", "surname": "Petrova", "faculty": "CSE", "level": "Junior"}], "pagination": {"page": 1, "per_page": 12, "total": 1, "pages": 1, "has_next": false, "has_prev": false}}`))
		case "/api/friends/status/batch":
			w.Write([]byte(`{"success": true, "statuses": {"7": null}}`))
		default:
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
	config.Override("output.format", "json")
	defer config.Override("output.format", "text")

	out := captureStdout(t, func() {
		svc := NewDirectoryService()
		if err := svc.Browse("all", "all", 1, 12); err != nil {
			t.Errorf("Browse failed: %v", err)
		}
	})

	var students []map[string]interface{}
	if err := json.Unmarshal([]byte(out), &students); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, out)
	}
	if len(students) != 1 || students[0]["name"] != "Alina" {
		t.Errorf("JSON output = %v", students)
	}
}
