package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/unihub/cli/pkg/api"
	"github.com/unihub/cli/pkg/errors"
	"github.com/unihub/cli/pkg/formatter"
	"github.com/unihub/cli/pkg/logger"
	"github.com/unihub/cli/pkg/output"
	"github.com/unihub/cli/pkg/state"
	"github.com/unihub/cli/pkg/validate"
)

// voiceEditLimit mirrors the server's budget of post edits per hour
const voiceEditLimit = 5

// LikeState is the visible like toggle state for one voice post
type LikeState struct {
	Liked bool
	Count int
}

// VoiceService drives the per-faculty voice board: the post feed, the
// user's single post, and optimistic like toggling.
type VoiceService struct {
	feed       *state.Feed[api.VoicePost]
	likes      map[int]*state.Optimistic[LikeState]
	editBudget *state.SlidingWindow
}

// NewVoiceService creates a voice board view with empty state
func NewVoiceService() *VoiceService {
	return &VoiceService{
		feed:       state.NewFeed(func(p api.VoicePost) int { return p.ID }),
		likes:      make(map[int]*state.Optimistic[LikeState]),
		editBudget: state.NewSlidingWindow(voiceEditLimit, time.Hour),
	}
}

// resolveGroup turns a user-supplied faculty or group name into a board
// group, falling back to the session's own group when empty.
func (s *VoiceService) resolveGroup(faculty string) (string, error) {
	faculty = strings.ToUpper(strings.TrimSpace(faculty))
	if faculty == "" {
		sess, err := ensureSession()
		if err != nil {
			return "", err
		}
		if sess.FacultyGroup != "" {
			return sess.FacultyGroup, nil
		}
		info, err := api.GetVoiceUserInfo()
		if err != nil {
			return "", fmt.Errorf("failed to resolve faculty group: %w", err)
		}
		return info.FacultyGroup, nil
	}
	if api.ValidGroup(faculty) {
		return faculty, nil
	}
	if group := api.FacultyGroup(faculty); group != "" {
		return group, nil
	}
	return "", errors.ValidationError("faculty",
		"must be a faculty (ICE, CSE, SBL_B, SBL_L) or a group (SOCIE, SBL)")
}

// Feed loads up to pages voice board pages for a faculty group and
// renders the merged feed. sort is most_liked or random.
func (s *VoiceService) Feed(faculty, sort string, pages, perPage int) error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	group, err := s.resolveGroup(faculty)
	if err != nil {
		return err
	}
	if sort == "" {
		sort = "most_liked"
	}
	if sort != "most_liked" && sort != "random" {
		return errors.ValidationError("sort", "must be most_liked or random")
	}

	s.feed.Reset()

	for i := 0; i < pages; i++ {
		page, token, ok := s.feed.BeginLoad()
		if !ok {
			break
		}

		resp, err := api.GetVoiceFeed(group, sort, page, perPage)
		if err != nil {
			s.feed.Fail(token)
			if page == 1 {
				return fmt.Errorf("failed to fetch voice feed: %w", err)
			}
			formatter.PrintWarning("Could not load page %d: %v", page, err)
			break
		}

		if _, ok := s.feed.Merge(token, resp.Posts, resp.Pagination.HasNext); !ok {
			logger.Debug("Discarded stale voice feed response", "page", page)
		}
	}

	posts := s.feed.Items()
	if len(posts) == 0 {
		fmt.Printf("No posts on the %s board yet.\n", group)
		return nil
	}

	switch output.GetOutputFormat() {
	case output.FormatJSON:
		return formatter.PrintObject(posts, "")
	case output.FormatTable:
		rows := make([][]string, 0, len(posts))
		for _, post := range posts {
			author := "anonymous"
			if post.Author != nil {
				author = post.Author.Name + " " + post.Author.Surname
			}
			rows = append(rows, []string{
				strconv.Itoa(post.ID),
				truncateString(post.Text, 50),
				strconv.Itoa(post.LikesCount),
				author,
				formatTimestamp(post.CreatedAt),
			})
		}
		formatter.PrintTable([]string{"ID", "Text", "Likes", "Author", "Posted"}, rows)
		return nil
	}

	boardTitle := color.New(color.FgCyan, color.Bold)
	boardTitle.Printf("\n%s voice board (%s)\n\n", group, sort)
	for _, post := range posts {
		s.displayPost(post)
	}

	if s.feed.HasMore() {
		fmt.Println("More posts available. Increase --pages to load further.")
	}
	return nil
}

// Compose validates and submits the user's voice post, replacing any
// existing one. A replaced post loses its likes server-side, so we warn
// first when a post already exists.
func (s *VoiceService) Compose(text, faculty string) error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	clean, err := validate.VoiceText(text)
	if err != nil {
		return err
	}

	if !s.editBudget.Allow() {
		wait := s.editBudget.RetryAfter().Round(time.Second)
		return errors.RateLimitError(int(wait.Seconds())).
			WithSuggestion(fmt.Sprintf("You can edit your post %d times per hour. Try again in %s.", voiceEditLimit, wait))
	}

	group, err := s.resolveGroup(faculty)
	if err != nil {
		return err
	}

	current, err := api.GetMyVoicePost()
	if err != nil {
		logger.Warn("Could not check for an existing post", "error", err)
	} else if current.Post != nil {
		formatter.PrintWarning("Replacing your existing post resets its %d likes", current.Post.LikesCount)
	}

	if err := api.SubmitVoicePost(clean, group); err != nil {
		formatter.PrintError("Failed to submit post: %v", err)
		return err
	}
	s.editBudget.Record()

	formatter.PrintSuccess("Posted to the %s board (%d edits left this hour)", group, s.editBudget.Remaining())
	return nil
}

// MyPost shows the user's current voice post, if any
func (s *VoiceService) MyPost() error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	resp, err := api.GetMyVoicePost()
	if err != nil {
		return fmt.Errorf("failed to fetch your post: %w", err)
	}

	if resp.Post == nil {
		fmt.Printf("You have no post on the %s board.\n", resp.FacultyGroup)
		return nil
	}

	fmt.Printf("\nYour post on the %s board:\n\n", resp.FacultyGroup)
	s.displayPost(*resp.Post)
	return nil
}

// DeletePost deletes the user's voice post
func (s *VoiceService) DeletePost(faculty string) error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	group := ""
	if faculty != "" {
		var err error
		if group, err = s.resolveGroup(faculty); err != nil {
			return err
		}
	}

	if err := api.DeleteMyVoicePost(group); err != nil {
		formatter.PrintError("Failed to delete post: %v", err)
		return err
	}

	formatter.PrintSuccess("Post deleted")
	return nil
}

// Like toggles a like on a voice post. The visible state flips
// immediately, then converges to server truth or reverts on failure.
func (s *VoiceService) Like(postID int) error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	like := s.likes[postID]
	if like == nil {
		initial := LikeState{}
		for _, post := range s.feed.Items() {
			if post.ID == postID {
				initial = LikeState{Liked: post.UserLiked, Count: post.LikesCount}
				break
			}
		}
		like = state.NewOptimistic(initial)
		s.likes[postID] = like
	}

	prior := like.Value()
	guess := LikeState{Liked: !prior.Liked, Count: prior.Count + 1}
	if prior.Liked {
		guess.Count = prior.Count - 1
	}
	if err := like.Begin(guess); err != nil {
		formatter.PrintWarning("A like for this post is already in flight")
		return err
	}

	resp, err := api.ToggleLike(postID)
	if err != nil {
		like.Revert()
		formatter.PrintError("Failed to toggle like: %v", err)
		return err
	}

	// Server truth wins over the optimistic guess
	like.Confirm(LikeState{Liked: resp.Liked, Count: resp.LikesCount})
	s.syncFeedLikes(postID, resp.Liked, resp.LikesCount)

	if resp.Liked {
		formatter.PrintSuccess("Liked post %d (%d likes)", postID, resp.LikesCount)
	} else {
		formatter.PrintSuccess("Unliked post %d (%d likes)", postID, resp.LikesCount)
	}
	return nil
}

// UserInfo shows the user's faculty and board group
func (s *VoiceService) UserInfo() error {
	if _, err := ensureSession(); err != nil {
		return err
	}

	info, err := api.GetVoiceUserInfo()
	if err != nil {
		return fmt.Errorf("failed to fetch voice user info: %w", err)
	}

	fmt.Printf("Faculty: %s\n", info.Faculty)
	fmt.Printf("Board:   %s (%s)\n", info.FacultyGroup,
		strings.Join(api.FacultyGroups[info.FacultyGroup], ", "))
	return nil
}

func (s *VoiceService) syncFeedLikes(postID int, liked bool, count int) {
	for _, post := range s.feed.Items() {
		if post.ID == postID {
			post.UserLiked = liked
			post.LikesCount = count
			s.feed.Update(post)
			return
		}
	}
}

func (s *VoiceService) displayPost(post api.VoicePost) {
	author := "anonymous"
	if post.Author != nil {
		author = fmt.Sprintf("%s %s (%s)", post.Author.Name, post.Author.Surname, post.Author.Faculty)
	}

	heart := "♡"
	if post.UserLiked {
		heart = color.RedString("♥")
	}

	fmt.Printf("#%d  %s\n", post.ID, post.Text)
	fmt.Printf("    %s %d | %s | %s\n\n", heart, post.LikesCount, author, formatTimestamp(post.CreatedAt))
}
