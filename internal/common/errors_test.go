package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name            string
		originalError   error
		message         string
		expectedMessage string
	}{
		{
			name:            "wrap simple error",
			originalError:   errors.New("original error"),
			message:         "wrapper message",
			expectedMessage: "wrapper message: original error",
		},
		{
			name:            "empty wrapper message",
			originalError:   errors.New("original error"),
			message:         "",
			expectedMessage: ": original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrappedError := WrapError(tt.originalError, tt.message)
			require.Error(t, wrappedError)
			assert.Equal(t, tt.expectedMessage, wrappedError.Error())
			assert.ErrorIs(t, wrappedError, tt.originalError)
		})
	}
}

func TestWrapError_Nil(t *testing.T) {
	assert.NoError(t, WrapError(nil, "context"))
	assert.NoError(t, WrapErrorf(nil, "context %d", 1))
}

func TestWrapErrorf(t *testing.T) {
	base := errors.New("boom")
	err := WrapErrorf(base, "reading %s", "a.txt")
	assert.Equal(t, "reading a.txt: boom", err.Error())
	assert.ErrorIs(t, err, base)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("path", "/tmp", "is a directory, not a file")
	assert.Equal(t, "validation failed for field 'path': is a directory, not a file (value: /tmp)", err.Error())
}

func TestFileTooLargeError_Message(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		expected string
	}{
		{
			name:     "just over the limit",
			size:     5*1024*1024 + 1,
			expected: "File too large (5.0 MB). Maximum size is 5 MB. Open a smaller file or use another tool.",
		},
		{
			name:     "fractional size",
			size:     int64(7.5 * 1024 * 1024),
			expected: "File too large (7.5 MB). Maximum size is 5 MB. Open a smaller file or use another tool.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewFileTooLargeError("big.log", tt.size, 5*1024*1024)
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestIsFileTooLarge(t *testing.T) {
	err := WrapError(NewFileTooLargeError("big.log", 10, 5), "read failed")
	assert.True(t, IsFileTooLarge(err))
	assert.False(t, IsFileTooLarge(errors.New("other")))
}

func TestParseError(t *testing.T) {
	cause := errors.New("unexpected end of input")
	err := NewParseError("json", cause)

	assert.Equal(t, "invalid json: unexpected end of input", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsParseError(fmt.Errorf("outer: %w", err)))
	assert.False(t, IsParseError(cause))
}

func TestGetRootCause(t *testing.T) {
	root := errors.New("root")
	err := WrapError(WrapError(root, "middle"), "outer")
	assert.Equal(t, root, GetRootCause(err))
}
