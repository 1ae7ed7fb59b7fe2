package state

import (
	"testing"
)

type testItem struct {
	ID   int
	Name string
}

func newTestFeed() *Feed[testItem] {
	return NewFeed(func(it testItem) int { return it.ID })
}

// TestFeedDedup verifies that an item appearing on two pages (the server
// shifted pagination between fetches) is rendered only once.
func TestFeedDedup(t *testing.T) {
	feed := newTestFeed()

	page, token, ok := feed.BeginLoad()
	if !ok || page != 1 {
		t.Fatalf("BeginLoad = (%d, ok=%v), want page 1", page, ok)
	}
	added, ok := feed.Merge(token, []testItem{{ID: 1}, {ID: 2}}, true)
	if !ok || added != 2 {
		t.Fatalf("Merge page 1 added %d (ok=%v), want 2", added, ok)
	}

	page, token, ok = feed.BeginLoad()
	if !ok || page != 2 {
		t.Fatalf("BeginLoad = (%d, ok=%v), want page 2", page, ok)
	}
	// Item 2 slid onto page 2
	added, ok = feed.Merge(token, []testItem{{ID: 2}, {ID: 3}}, false)
	if !ok || added != 1 {
		t.Fatalf("Merge page 2 added %d (ok=%v), want 1", added, ok)
	}

	if len(feed.Items()) != 3 {
		t.Errorf("Feed has %d items, want 3", len(feed.Items()))
	}
	if feed.HasMore() {
		t.Error("HasMore should be false after the last page")
	}
	if _, _, ok := feed.BeginLoad(); ok {
		t.Error("BeginLoad should refuse when no pages remain")
	}
}

// TestFeedInFlightGuard verifies a second load cannot start while one is
// pending, and that a failed load can be retried on the same page.
func TestFeedInFlightGuard(t *testing.T) {
	feed := newTestFeed()

	_, token, ok := feed.BeginLoad()
	if !ok {
		t.Fatal("First BeginLoad refused")
	}
	if _, _, ok := feed.BeginLoad(); ok {
		t.Error("BeginLoad should refuse while a load is in flight")
	}

	feed.Fail(token)
	page, _, ok := feed.BeginLoad()
	if !ok || page != 1 {
		t.Errorf("Retry after Fail = (%d, ok=%v), want page 1", page, ok)
	}
}

// TestFeedStaleToken verifies that a response started before a reset is
// discarded rather than merged into the new view.
func TestFeedStaleToken(t *testing.T) {
	feed := newTestFeed()

	_, staleToken, ok := feed.BeginLoad()
	if !ok {
		t.Fatal("BeginLoad refused")
	}

	// View resets while the fetch is in flight
	feed.Reset()

	if _, ok := feed.Merge(staleToken, []testItem{{ID: 99}}, true); ok {
		t.Error("Merge with a stale token should be discarded")
	}
	if len(feed.Items()) != 0 {
		t.Errorf("Stale merge leaked %d items into the feed", len(feed.Items()))
	}

	// The reset view loads normally afterwards
	_, token, ok := feed.BeginLoad()
	if !ok {
		t.Fatal("BeginLoad after reset refused")
	}
	if _, ok := feed.Merge(token, []testItem{{ID: 1}}, true); !ok {
		t.Error("Fresh merge after reset should succeed")
	}
}

// TestFeedSearchMode verifies search replaces the feed, suppresses
// pagination, and invalidates in-flight page loads.
func TestFeedSearchMode(t *testing.T) {
	feed := newTestFeed()

	_, token, _ := feed.BeginLoad()

	feed.EnterSearch([]testItem{{ID: 10}, {ID: 10}, {ID: 11}})

	if !feed.InSearchMode() {
		t.Fatal("Expected search mode")
	}
	if len(feed.Items()) != 2 {
		t.Errorf("Search results = %d items, want 2 after dedup", len(feed.Items()))
	}
	if _, _, ok := feed.BeginLoad(); ok {
		t.Error("BeginLoad should refuse in search mode")
	}
	if _, ok := feed.Merge(token, []testItem{{ID: 1}}, true); ok {
		t.Error("Pre-search page load should be stale after EnterSearch")
	}

	feed.ClearSearch()
	if feed.InSearchMode() {
		t.Error("ClearSearch should leave search mode")
	}
	if page, _, ok := feed.BeginLoad(); !ok || page != 1 {
		t.Errorf("BeginLoad after ClearSearch = (%d, ok=%v), want page 1", page, ok)
	}
}

func TestFeedRemoveAndUpdate(t *testing.T) {
	feed := newTestFeed()

	_, token, _ := feed.BeginLoad()
	feed.Merge(token, []testItem{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, false)

	if !feed.Remove(1) {
		t.Error("Remove(1) should report true")
	}
	if feed.Remove(1) {
		t.Error("Second Remove(1) should report false")
	}
	if len(feed.Items()) != 1 {
		t.Fatalf("Feed has %d items after remove, want 1", len(feed.Items()))
	}

	if !feed.Update(testItem{ID: 2, Name: "renamed"}) {
		t.Error("Update(2) should report true")
	}
	if feed.Items()[0].Name != "renamed" {
		t.Errorf("Update did not replace the item: %+v", feed.Items()[0])
	}
	if feed.Update(testItem{ID: 99}) {
		t.Error("Update of an absent id should report false")
	}
}
