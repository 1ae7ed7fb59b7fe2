package api

import (
	"fmt"

	json "github.com/json-iterator/go"
	"github.com/unihub/cli/pkg/client"
	"github.com/unihub/cli/pkg/logger"
)

// Profile sections the server accepts partial updates for
const (
	SectionBasic    = "basic"
	SectionPersonal = "personal"
	SectionAcademic = "academic"
	SectionContact  = "contact"
	SectionAbout    = "about"
)

// GetMyProfile retrieves the current user's profile
func GetMyProfile() (*Profile, error) {
	logger.Debug("Fetching own profile")

	resp, err := client.GetClient().
		R().
		Get("/api/profile/me")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var response struct {
		Success bool    `json:"success"`
		Profile Profile `json:"profile"`
	}
	if err := json.Unmarshal(resp.Body(), &response); err != nil {
		return nil, err
	}

	return &response.Profile, nil
}

// UpdateProfileSection posts a partial update to one profile section and
// returns the fields the server echoed back after sanitizing.
func UpdateProfileSection(section string, fields map[string]interface{}) (map[string]interface{}, error) {
	logger.Debug("Updating profile section", "section", section)

	resp, err := client.GetClient().
		R().
		SetBody(fields).
		Patch(fmt.Sprintf("/api/profile/%s", section))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var response struct {
		Success bool                   `json:"success"`
		Message string                 `json:"message"`
		Data    map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}
