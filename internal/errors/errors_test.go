package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrConfig, "Invalid refresh interval", "Use a duration like 2s or 500ms")

	msg := err.Error()
	assert.Contains(t, msg, "✗ Invalid refresh interval")
	assert.Contains(t, msg, "Use a duration like 2s or 500ms")
}

func TestWrapWithCode(t *testing.T) {
	cause := fmt.Errorf("operation not supported by device")
	err := WrapWithCode(cause, ErrTerm, "Cannot enter raw terminal mode", "Run miaumon in an interactive terminal")

	assert.Contains(t, err.Error(), "operation not supported by device")
	assert.ErrorIs(t, err, cause)
}

func TestIsCode(t *testing.T) {
	err := New(ErrTerm, "boom", "")

	assert.True(t, IsCode(err, ErrTerm))
	assert.False(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(nil, ErrTerm))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrTerm))
}

func TestIsCodeWrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(ErrConfig, "inner", ""))
	assert.True(t, IsCode(err, ErrConfig))
}
