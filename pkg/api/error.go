package api

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	json "github.com/json-iterator/go"
)

// APIError represents an API error response. The server answers every
// failure with a JSON envelope carrying success=false and an error
// string, sometimes with extra context (friend-request state, rate
// limit info).
type APIError struct {
	StatusCode   int
	Message      string
	Status       string // friend-status hint on 400 responses
	RequestID    int
	HasIncoming  bool
	RetryAfter   int
	LimitReached bool
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.StatusCode, e.Message)
}

type errorEnvelope struct {
	Success      bool   `json:"success"`
	Error        string `json:"error"`
	Message      string `json:"message"`
	Status       string `json:"status"`
	RequestID    int    `json:"request_id"`
	HasIncoming  bool   `json:"has_incoming"`
	RetryAfter   int    `json:"retry_after"`
	LimitReached bool   `json:"limit_reached"`
}

// ParseError parses an error response from the API
func ParseError(resp *resty.Response) error {
	statusCode := resp.StatusCode()

	var env errorEnvelope
	if err := json.Unmarshal(resp.Body(), &env); err == nil && (env.Error != "" || env.Message != "") {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		return &APIError{
			StatusCode:   statusCode,
			Message:      msg,
			Status:       env.Status,
			RequestID:    env.RequestID,
			HasIncoming:  env.HasIncoming,
			RetryAfter:   env.RetryAfter,
			LimitReached: env.LimitReached,
		}
	}

	// Fallback to generic error
	return &APIError{
		StatusCode: statusCode,
		Message:    string(resp.Body()),
	}
}

// IsUnauthorized checks if error is due to missing/invalid authentication
func IsUnauthorized(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.StatusCode == 401
	}
	return false
}

// IsForbidden checks if error is due to insufficient permissions
func IsForbidden(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.StatusCode == 403
	}
	return false
}

// IsNotFound checks if error is due to resource not found
func IsNotFound(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.StatusCode == 404
	}
	return false
}

// IsRateLimited checks if error is due to a rate or quota limit
func IsRateLimited(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.StatusCode == 429
	}
	return false
}

// IsServerError checks if error is due to server error (5xx)
func IsServerError(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.StatusCode >= 500
	}
	return false
}

// CheckResponse checks if response is successful and returns error if not.
// The server also signals application-level failure as success=false in a
// 200 body, so both layers are checked.
func CheckResponse(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		return ParseError(resp)
	}

	var env errorEnvelope
	if jsonErr := json.Unmarshal(resp.Body(), &env); jsonErr == nil && !env.Success && env.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode(),
			Message:    env.Error,
			Status:     env.Status,
			RequestID:  env.RequestID,
		}
	}

	return nil
}
