package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizeError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"connection refused", errors.New("dial tcp: connection refused"), ErrorTypeNetwork},
		{"timeout", errors.New("request timeout"), ErrorTypeTimeout},
		{"deadline", errors.New("context deadline exceeded"), ErrorTypeTimeout},
		{"unauthorized", errors.New("401 unauthorized"), ErrorTypeAuth},
		{"forbidden", errors.New("403 forbidden"), ErrorTypeForbidden},
		{"not found", errors.New("resource not found"), ErrorTypeNotFound},
		{"rate limit", errors.New("429 too many requests"), ErrorTypeRateLimit},
		{"server", errors.New("500 internal server error"), ErrorTypeServer},
		{"unknown", errors.New("something odd"), ErrorTypeUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CategorizeError(tc.err)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got.Type)
		})
	}
}

func TestCategorizeErrorPassthrough(t *testing.T) {
	orig := SessionExpiredError()
	got := CategorizeError(orig)
	assert.Same(t, orig, got, "existing CLIError should pass through unchanged")

	assert.Nil(t, CategorizeError(nil))
}

func TestCategorizeErrorWrapped(t *testing.T) {
	wrapped := &wrapError{cause: PhotoSizeError(7.2, 5)}
	got := CategorizeError(wrapped)
	assert.Equal(t, ErrorTypePhotoSize, got.Type)
}

type wrapError struct{ cause error }

func (w *wrapError) Error() string { return "wrapped: " + w.cause.Error() }
func (w *wrapError) Unwrap() error { return w.cause }

func TestFormatError(t *testing.T) {
	out := FormatError(SessionExpiredError())
	assert.Contains(t, out, "session has expired")
	assert.Contains(t, out, "Suggestion:")
	assert.Contains(t, out, "session login")

	out = FormatError(RateLimitError(120))
	assert.Contains(t, out, "Retry in: 120 seconds")

	assert.Empty(t, FormatError(nil))
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidationError("name", "cannot contain spaces")
	if !strings.Contains(err.Error(), "name") || !strings.Contains(err.Error(), "cannot contain spaces") {
		t.Errorf("Error message missing field or reason: %q", err.Error())
	}
	assert.False(t, err.HasSuggestion())
}
