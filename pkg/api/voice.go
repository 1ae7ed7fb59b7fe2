package api

import (
	"fmt"

	"github.com/unihub/cli/pkg/client"
	"github.com/unihub/cli/pkg/logger"
)

// VoiceFeedResponse is a page of the per-faculty voice board
type VoiceFeedResponse struct {
	Success    bool        `json:"success"`
	Posts      []VoicePost `json:"posts"`
	Pagination Pagination  `json:"pagination"`
}

// MyVoicePost is the (single) post the current user owns in their group
type MyVoicePostResponse struct {
	Success      bool       `json:"success"`
	Post         *VoicePost `json:"post"`
	FacultyGroup string     `json:"faculty_group"`
}

// VoiceUserInfo describes the current user's faculty and board group
type VoiceUserInfo struct {
	Success      bool   `json:"success"`
	UserID       int    `json:"user_id"`
	Faculty      string `json:"faculty"`
	FacultyGroup string `json:"faculty_group"`
}

// LikeResponse is the server truth after a like toggle
type LikeResponse struct {
	Success    bool `json:"success"`
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

// GetVoiceFeed retrieves a page of voice posts for a faculty group.
// faculty must be SOCIE or SBL; sort is most_liked or random.
func GetVoiceFeed(faculty, sort string, page, perPage int) (*VoiceFeedResponse, error) {
	logger.Debug("Fetching voice feed", "faculty", faculty, "sort", sort, "page", page)

	var response VoiceFeedResponse

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"faculty":  faculty,
			"sort":     sort,
			"page":     fmt.Sprintf("%d", page),
			"per_page": fmt.Sprintf("%d", perPage),
		}).
		SetResult(&response).
		Get("/api/voice")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// SubmitVoicePost creates or replaces the user's post in their faculty
// group. Replacing resets the like count server-side.
func SubmitVoicePost(text, faculty string) error {
	logger.Debug("Submitting voice post", "faculty", faculty)

	resp, err := client.GetClient().
		R().
		SetBody(map[string]string{"text": text, "faculty": faculty}).
		Post("/api/voice")

	return CheckResponse(resp, err)
}

// GetMyVoicePost retrieves the current user's voice post, if any
func GetMyVoicePost() (*MyVoicePostResponse, error) {
	logger.Debug("Fetching own voice post")

	var response MyVoicePostResponse

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get("/api/voice/me")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// DeleteMyVoicePost deletes the current user's voice post. faculty is
// optional; when set the server verifies it matches the user's group.
func DeleteMyVoicePost(faculty string) error {
	logger.Debug("Deleting own voice post", "faculty", faculty)

	req := client.GetClient().R()
	if faculty != "" {
		req.SetBody(map[string]string{"faculty": faculty})
	}

	resp, err := req.Delete("/api/voice/me")

	return CheckResponse(resp, err)
}

// GetVoiceUserInfo retrieves the current user's faculty group
func GetVoiceUserInfo() (*VoiceUserInfo, error) {
	logger.Debug("Fetching voice user info")

	var response VoiceUserInfo

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get("/api/voice/user-info")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// ToggleLike toggles a like on a voice post and returns server truth
func ToggleLike(postID int) (*LikeResponse, error) {
	logger.Debug("Toggling like", "post_id", postID)

	var response LikeResponse

	resp, err := client.GetClient().
		R().
		SetBody(map[string]int{"post_id": postID}).
		SetResult(&response).
		Post("/api/voice/like")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}
