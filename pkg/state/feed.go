package state

// Feed is a per-view paginated feed: it tracks the current page, whether
// more pages remain, and an in-flight guard, deduplicating merged items
// by entity id. Every load carries a monotonic request token; responses
// arriving with a stale token (the view was reset, switched to search, or
// a newer load superseded them) are discarded instead of rendering into
// the wrong view.
type Feed[T any] struct {
	idOf func(T) int

	items       []T
	seen        map[int]bool
	page        int
	pendingPage int
	hasMore     bool
	loading     bool
	searchMode  bool
	token       uint64
}

// NewFeed creates an empty feed; idOf extracts the dedupe key
func NewFeed[T any](idOf func(T) int) *Feed[T] {
	return &Feed[T]{
		idOf:    idOf,
		seen:    make(map[int]bool),
		hasMore: true,
	}
}

// Items returns the rendered items in merge order
func (f *Feed[T]) Items() []T {
	return f.items
}

// Page returns the last committed page number (0 before any load)
func (f *Feed[T]) Page() int {
	return f.page
}

// HasMore reports whether further pages remain
func (f *Feed[T]) HasMore() bool {
	return f.hasMore
}

// Loading reports whether a load is in flight
func (f *Feed[T]) Loading() bool {
	return f.loading
}

// InSearchMode reports whether one-shot search results are displayed
func (f *Feed[T]) InSearchMode() bool {
	return f.searchMode
}

// BeginLoad reserves the next page load. It refuses when a load is
// already in flight, no pages remain, or search mode suppresses
// pagination, returning ok=false.
func (f *Feed[T]) BeginLoad() (page int, token uint64, ok bool) {
	if f.loading || !f.hasMore || f.searchMode {
		return 0, 0, false
	}
	f.loading = true
	f.pendingPage = f.page + 1
	f.token++
	return f.pendingPage, f.token, true
}

// Merge commits a fetched page. Items whose id was already rendered are
// skipped. A stale token (view changed since the fetch started) discards
// the whole response and reports ok=false.
func (f *Feed[T]) Merge(token uint64, items []T, hasNext bool) (added int, ok bool) {
	if token != f.token {
		return 0, false
	}
	f.loading = false
	f.page = f.pendingPage
	f.hasMore = hasNext

	for _, item := range items {
		id := f.idOf(item)
		if f.seen[id] {
			continue
		}
		f.seen[id] = true
		f.items = append(f.items, item)
		added++
	}
	return added, true
}

// Fail clears the in-flight guard for a failed load. The page counter is
// untouched so the same page can be retried.
func (f *Feed[T]) Fail(token uint64) {
	if token != f.token {
		return
	}
	f.loading = false
}

// EnterSearch replaces the feed with one-shot search results and
// suppresses pagination until ClearSearch. In-flight page loads become
// stale.
func (f *Feed[T]) EnterSearch(items []T) {
	f.token++
	f.loading = false
	f.searchMode = true

	f.items = nil
	f.seen = make(map[int]bool)
	for _, item := range items {
		id := f.idOf(item)
		if f.seen[id] {
			continue
		}
		f.seen[id] = true
		f.items = append(f.items, item)
	}
}

// ClearSearch leaves search mode and resets pagination from scratch
func (f *Feed[T]) ClearSearch() {
	f.searchMode = false
	f.Reset()
}

// Remove drops one item by id (e.g. a notification deleted on read)
func (f *Feed[T]) Remove(id int) bool {
	if !f.seen[id] {
		return false
	}
	delete(f.seen, id)
	for i, item := range f.items {
		if f.idOf(item) == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true
		}
	}
	return false
}

// Update replaces the stored copy of an item in place, matched by id
func (f *Feed[T]) Update(item T) bool {
	id := f.idOf(item)
	for i, existing := range f.items {
		if f.idOf(existing) == id {
			f.items[i] = item
			return true
		}
	}
	return false
}

// Reset empties the feed and invalidates in-flight loads
func (f *Feed[T]) Reset() {
	f.token++
	f.items = nil
	f.seen = make(map[int]bool)
	f.page = 0
	f.pendingPage = 0
	f.hasMore = true
	f.loading = false
}
