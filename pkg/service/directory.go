package service

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/unihub/cli/pkg/api"
	"github.com/unihub/cli/pkg/config"
	"github.com/unihub/cli/pkg/formatter"
	"github.com/unihub/cli/pkg/logger"
	"github.com/unihub/cli/pkg/output"
	"github.com/unihub/cli/pkg/state"
)

// MinSearchLength gates search dispatch, matching the server's own cutoff
const MinSearchLength = 2

// DirectoryService drives the student directory: an infinite-scroll grid
// with faculty/level filters, debounced search, and batch friend-status
// decoration of the rendered cards.
type DirectoryService struct {
	feed     *state.Feed[api.Student]
	statuses *state.StatusCache
	debounce *state.Debouncer
}

// NewDirectoryService creates a directory view with empty state
func NewDirectoryService() *DirectoryService {
	window := time.Duration(config.GetInt("search.debounce_ms")) * time.Millisecond
	if window <= 0 {
		window = 300 * time.Millisecond
	}
	return &DirectoryService{
		feed:     state.NewFeed(func(s api.Student) int { return s.UserID }),
		statuses: state.NewStatusCache(),
		debounce: state.NewDebouncer(window, 0),
	}
}

// Browse loads up to pages directory pages with the given filters and
// renders the merged grid. Switching filters resets the feed so stale
// responses cannot render into the new view.
func (s *DirectoryService) Browse(faculty, level string, pages, perPage int) error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	s.feed.Reset()

	for i := 0; i < pages; i++ {
		page, token, ok := s.feed.BeginLoad()
		if !ok {
			break
		}

		resp, err := api.GetStudents(page, perPage, faculty, level)
		if err != nil {
			s.feed.Fail(token)
			if page == 1 {
				return fmt.Errorf("failed to fetch students: %w", err)
			}
			// Later pages degrade to what is already rendered
			formatter.PrintWarning("Could not load page %d: %v", page, err)
			break
		}

		added, ok := s.feed.Merge(token, resp.Students, resp.Pagination.HasNext)
		if !ok {
			logger.Debug("Discarded stale directory response", "page", page)
			continue
		}
		logger.Debug("Merged directory page", "page", page, "added", added)
	}

	students := s.feed.Items()
	if len(students) == 0 {
		fmt.Println("No students found.")
		return nil
	}

	s.fetchStatuses(students)
	s.displayGrid(students)

	if s.feed.HasMore() {
		fmt.Println("More students available. Increase --pages to load further.")
	}
	return nil
}

// Search runs a one-shot name search. Results replace the grid and
// pagination stays suppressed until the query is cleared.
func (s *DirectoryService) Search(query string) error {
	query = strings.TrimSpace(query)
	if len(query) < MinSearchLength {
		formatter.PrintWarning("Enter at least %d characters to search", MinSearchLength)
		return nil
	}

	if _, err := ensureSession(); err != nil {
		return err
	}

	resp, err := api.SearchStudents(query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	s.feed.EnterSearch(resp.Students)

	students := s.feed.Items()
	if len(students) == 0 {
		fmt.Printf("No students found for \"%s\"\n", query)
		return nil
	}

	s.fetchStatuses(students)
	fmt.Printf("Search results for \"%s\" (%d):\n\n", query, len(students))
	s.displayGrid(students)
	return nil
}

// SearchInput feeds a keystroke-level query through the debouncer: rapid
// updates coalesce into one search, and short queries clear search mode
// instead of dispatching.
func (s *DirectoryService) SearchInput(query string) {
	query = strings.TrimSpace(query)
	if len(query) < MinSearchLength {
		s.debounce.Stop()
		if s.feed.InSearchMode() {
			s.feed.ClearSearch()
		}
		return
	}

	s.debounce.Trigger(func() {
		if err := s.Search(query); err != nil {
			logger.Error("Debounced search failed", "query", query, "error", err)
		}
	})
}

// ClearSearch leaves search mode and re-enables pagination
func (s *DirectoryService) ClearSearch() {
	s.feed.ClearSearch()
}

// SearchInteractive reads queries line by line and dispatches them
// through the debouncer, the way the search box behaves in the browser.
// A blank line clears search mode, "q" quits.
func (s *DirectoryService) SearchInteractive() error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	formatter.PrintInfo("Type to search (min %d characters). Blank line clears, \"q\" quits.", MinSearchLength)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("search> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "q" {
			break
		}
		s.SearchInput(line)
	}

	s.debounce.Stop()
	s.ClearSearch()
	return scanner.Err()
}

// fetchStatuses batch-loads friend statuses for cards not yet cached.
// A failed batch leaves cards on the default "Add Friend" control.
func (s *DirectoryService) fetchStatuses(students []api.Student) {
	var missing []int
	for _, student := range students {
		if _, ok := s.statuses.Get(student.UserID); !ok {
			missing = append(missing, student.UserID)
		}
	}
	if len(missing) == 0 {
		return
	}

	// The batch endpoint caps at 100 ids per call
	for start := 0; start < len(missing); start += 100 {
		end := start + 100
		if end > len(missing) {
			end = len(missing)
		}

		statuses, err := api.BatchFriendStatus(missing[start:end])
		if err != nil {
			logger.Warn("Batch status fetch failed", "error", err)
			return
		}
		for id, entry := range statuses {
			s.statuses.Set(id, state.StatusEntry{
				Status:    state.ParseFriendStatus(entry.Status),
				RequestID: entry.RequestID,
			})
		}
	}
}

func (s *DirectoryService) displayGrid(students []api.Student) {
	switch output.GetOutputFormat() {
	case output.FormatJSON:
		formatter.PrintObject(students, "")
		return
	case output.FormatTable:
		rows := make([][]string, 0, len(students))
		for _, student := range students {
			entry, _ := s.statuses.Get(student.UserID)
			rows = append(rows, []string{
				strconv.Itoa(student.UserID),
				student.Name + " " + student.Surname,
				student.Faculty,
				student.Level,
				state.FriendButton(entry.Status).Label,
			})
		}
		formatter.PrintTable([]string{"ID", "Name", "Faculty", "Level", "Action"}, rows)
		return
	}

	for i, student := range students {
		entry, _ := s.statuses.Get(student.UserID)
		btn := state.FriendButton(entry.Status)

		fmt.Printf("%d. %s %s (id %d)\n", i+1, student.Name, student.Surname, student.UserID)
		fmt.Printf("   %s | %s\n", student.Faculty, student.Level)
		if student.Hobbies != "" {
			fmt.Printf("   Hobbies: %s\n", truncateString(student.Hobbies, 40))
		}
		if student.FavoriteSubjects != "" {
			fmt.Printf("   Subjects: %s\n", truncateString(student.FavoriteSubjects, 40))
		}
		fmt.Printf("   [%s]\n\n", btn.Label)
	}
}
