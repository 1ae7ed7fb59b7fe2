package api

import (
	"fmt"

	"github.com/unihub/cli/pkg/client"
	"github.com/unihub/cli/pkg/logger"
)

// StudentListResponse is the paginated directory page
type StudentListResponse struct {
	Success    bool       `json:"success"`
	Students   []Student  `json:"students"`
	Pagination Pagination `json:"pagination"`
}

// SearchResponse is the one-shot search result (no pagination)
type SearchResponse struct {
	Success  bool      `json:"success"`
	Students []Student `json:"students"`
	Total    int       `json:"total"`
}

// GetStudents retrieves a page of the student directory. Empty or "all"
// filter values are not sent. The current user is excluded server-side.
func GetStudents(page, perPage int, faculty, level string) (*StudentListResponse, error) {
	logger.Debug("Fetching students", "page", page, "faculty", faculty, "level", level)

	params := map[string]string{
		"page":     fmt.Sprintf("%d", page),
		"per_page": fmt.Sprintf("%d", perPage),
	}
	if faculty != "" && faculty != "all" {
		params["faculty"] = faculty
	}
	if level != "" && level != "all" {
		params["level"] = level
	}

	var response StudentListResponse

	resp, err := client.GetClient().
		R().
		SetQueryParams(params).
		SetResult(&response).
		Get("/api/students")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// SearchStudents searches students by name or surname. Queries shorter
// than 2 characters return an empty result server-side, so the caller is
// expected to gate on length before dispatching.
func SearchStudents(query string) (*SearchResponse, error) {
	logger.Debug("Searching students", "query", query)

	var response SearchResponse

	resp, err := client.GetClient().
		R().
		SetQueryParam("q", query).
		SetResult(&response).
		Get("/api/search")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}
