package client

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/unihub/cli/pkg/config"
	"github.com/unihub/cli/pkg/logger"
)

var httpClient *resty.Client
var csrfToken string

// Init initializes the HTTP client
func Init() {
	httpClient = resty.New()

	baseURL := config.GetString("api.base_url")
	timeout := time.Duration(config.GetInt("api.timeout")) * time.Second

	httpClient.SetBaseURL(baseURL)
	httpClient.SetTimeout(timeout)
	httpClient.SetHeader("User-Agent", "UniHub-CLI/0.1.0")

	// Retry policy: idempotent GETs only, exponential backoff starting
	// at 1s. Mutating verbs surface the error for manual retry.
	retryCount := config.GetInt("api.retry_count")
	if retryCount <= 0 {
		retryCount = 3
	}
	retryWait := config.GetInt("api.retry_wait")
	if retryWait <= 0 {
		retryWait = 1
	}
	httpClient.SetRetryCount(retryCount)
	httpClient.SetRetryWaitTime(time.Duration(retryWait) * time.Second)
	httpClient.SetRetryMaxWaitTime(time.Duration(retryWait) * 8 * time.Second)
	httpClient.AddRetryCondition(func(resp *resty.Response, err error) bool {
		if resp == nil || resp.Request == nil || resp.Request.Method != http.MethodGet {
			return false
		}
		return err != nil || resp.StatusCode() >= 500
	})

	// Add request/response logging
	httpClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logger.Debug("HTTP Request", "method", req.Method, "url", req.URL)

		// All mutating requests carry the page-injected CSRF token
		if csrfToken != "" && req.Method != http.MethodGet {
			req.Header.Set("X-CSRFToken", csrfToken)
		}

		return nil
	})

	httpClient.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP Response", "status", resp.StatusCode())
		return nil
	})
}

// GetClient returns the HTTP client
func GetClient() *resty.Client {
	if httpClient == nil {
		Init()
	}
	return httpClient
}

// SetSession sets the session cookie and CSRF token for all requests
func SetSession(sessionToken, csrf string) {
	if httpClient == nil {
		Init()
	}
	httpClient.SetCookie(&http.Cookie{Name: "session", Value: sessionToken})
	csrfToken = csrf
}

// ClearSession drops the session cookie and CSRF token
func ClearSession() {
	csrfToken = ""
	httpClient = nil
	Init()
}

// SetBaseURL overrides the configured API base URL
func SetBaseURL(url string) {
	if httpClient == nil {
		Init()
	}
	httpClient.SetBaseURL(url)
}
