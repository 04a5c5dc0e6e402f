package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidInput, "player requires a video id")

	assert.EqualError(t, wrapped, "player requires a video id: invalid input")
	assert.ErrorIs(t, wrapped, ErrInvalidInput, "wrapping preserves the sentinel chain")
}

func TestWrap_NilPassesThrough(t *testing.T) {
	assert.NoError(t, Wrap(nil, "whatever"))
}

func TestError_WithoutCause(t *testing.T) {
	err := &Error{Message: "plain"}
	assert.EqualError(t, err, "plain")
	assert.NoError(t, errors.Unwrap(err))
}
