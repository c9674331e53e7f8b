package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrInvalidInput, "text must not be empty")
	assert.Equal(t, "[INVALID_INPUT] text must not be empty", err.Error())

	wrapped := Wrap(stderrors.New("disk full"), ErrIOFailure, "write artifact")
	assert.Equal(t, "[IO_FAILURE] write artifact: disk full", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(cause, ErrConfigParse, "parse spec")
	assert.True(t, stderrors.Is(err, cause))
}

func TestHasCode(t *testing.T) {
	err := Newf(ErrMissingCapability, "no %s", "framebuffer")
	assert.True(t, HasCode(err, ErrMissingCapability))
	assert.False(t, HasCode(err, ErrIOFailure))

	// Works through plain wrapping too.
	assert.True(t, HasCode(fmt.Errorf("context: %w", err), ErrMissingCapability))
	assert.False(t, HasCode(stderrors.New("plain"), ErrIOFailure))
}

func TestIsMatchesOnCode(t *testing.T) {
	a := New(ErrInvalidInput, "one")
	b := New(ErrInvalidInput, "two")
	assert.True(t, stderrors.Is(a, b))
}
