package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "message only",
			err:      NewConfigError("late minutes must be a number", nil),
			expected: "late minutes must be a number",
		},
		{
			name:     "message with cause",
			err:      NewDecodeError("failed to open workbook", stderrors.New("zip: not a valid zip file")),
			expected: "failed to open workbook: zip: not a valid zip file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := NewWriteError("failed to create report", cause)

	assert.True(t, stderrors.Is(err, cause))
}

func TestIsKind(t *testing.T) {
	err := NewSourceError("no attendance files found", nil)

	assert.True(t, IsKind(err, KindSource))
	assert.False(t, IsKind(err, KindConfig))

	// Wrapped AppErrors are still classified.
	wrapped := fmt.Errorf("run failed: %w", err)
	assert.True(t, IsKind(wrapped, KindSource))

	assert.False(t, IsKind(stderrors.New("plain"), KindSource))
}

func TestNewf(t *testing.T) {
	err := Newf(KindRowFormat, "invalid join time %q", "yesterday")

	assert.Equal(t, `invalid join time "yesterday"`, err.Error())
	assert.True(t, IsKind(err, KindRowFormat))
}
