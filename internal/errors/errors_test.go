package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	// Verify all expected error codes exist
	codes := []string{
		ErrConfig,
		ErrFetch,
		ErrChannel,
		ErrSelection,
		ErrEvent,
	}

	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
	}

	// Verify codes are unique
	seen := make(map[string]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in .depwatch.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "fetch error",
			code:       ErrFetch,
			message:    "Cannot fetch graph snapshot from server",
			suggestion: "Check the server URL with 'depwatch status'",
		},
		{
			name:       "channel error",
			code:       ErrChannel,
			message:    "Push channel connection lost",
			suggestion: "The client reconnects automatically; check server logs if it persists",
		},
		{
			name:       "selection error",
			code:       ErrSelection,
			message:    "Node 'payments-db' not present in snapshot",
			suggestion: "Reload the snapshot with 'r'",
		},
		{
			name:       "event error",
			code:       ErrEvent,
			message:    "Metric event missing node_id",
			suggestion: "Event dropped; the stream continues",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, "Snapshot request failed")

	require.NotNil(t, err)
	assert.Equal(t, ErrFetch, err.Code)
	assert.Equal(t, "Snapshot request failed", err.Message)
	assert.Equal(t, cause, err.Cause)
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("yaml: line 3: mapping values are not allowed")
	err := WrapWithCode(cause, ErrConfig, "Failed to parse config", "Check YAML indentation")

	require.NotNil(t, err)
	assert.Equal(t, ErrConfig, err.Code)
	assert.Equal(t, "Failed to parse config", err.Message)
	assert.Equal(t, "Check YAML indentation", err.Suggestion)
	assert.Equal(t, cause, err.Cause)
}

func TestError_Format(t *testing.T) {
	err := WrapWithCode(
		errors.New("dial tcp: connection refused"),
		ErrFetch,
		"Cannot reach graph server",
		"Check the server URL in .depwatch.yaml",
	)

	msg := err.Error()

	// Failure symbol and message on the first line
	assert.True(t, strings.HasPrefix(msg, "✗ Cannot reach graph server"))
	// Cause included
	assert.Contains(t, msg, "dial tcp: connection refused")
	// Suggestion included
	assert.Contains(t, msg, "Check the server URL in .depwatch.yaml")
}

func TestError_FormatWithoutCauseOrSuggestion(t *testing.T) {
	err := New(ErrSelection, "Unknown node", "")

	msg := err.Error()
	assert.Contains(t, msg, "✗ Unknown node")
	assert.NotContains(t, msg, "\n\n\n")
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(cause, "wrapped")

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))
}

func TestIsCode(t *testing.T) {
	fetchErr := New(ErrFetch, "fetch failed", "")
	configErr := New(ErrConfig, "bad config", "")
	plainErr := errors.New("plain")

	assert.True(t, IsCode(fetchErr, ErrFetch))
	assert.False(t, IsCode(fetchErr, ErrConfig))
	assert.True(t, IsCode(configErr, ErrConfig))
	assert.False(t, IsCode(plainErr, ErrFetch))
	assert.False(t, IsCode(nil, ErrFetch))
}

func TestIsCode_WrappedError(t *testing.T) {
	inner := New(ErrChannel, "channel dropped", "")
	outer := WrapWithCode(inner, ErrFetch, "outer", "")

	// The outer code wins; errors.As finds the outermost structured error
	assert.True(t, IsCode(outer, ErrFetch))
}
