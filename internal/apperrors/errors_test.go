package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := Newf(CodeUnknownAction, "attack index %d out of range", 7)

	assert.True(t, errors.Is(err, ErrUnknownAction))
	assert.False(t, errors.Is(err, ErrInvalidArgument))

	wrapped := fmt.Errorf("resolve intent: %w", err)
	assert.True(t, errors.Is(wrapped, ErrUnknownAction))
	assert.Equal(t, CodeUnknownAction, GetCode(wrapped))
}

func TestGetCodeForForeignError(t *testing.T) {
	assert.Equal(t, CodeUnknown, GetCode(errors.New("boom")))
	assert.False(t, IsCode(nil, CodeInvalidArgument))
}

func TestErrorMessageIncludesSortedMetadata(t *testing.T) {
	err := New(CodeInvalidArgument, "negative amount").
		WithMetadata("resource", "mana").
		WithMetadata("amount", "-5")

	assert.Equal(t, "INVALID_ARGUMENT: negative amount (amount=-5, resource=mana)", err.Error())
}

func TestWithMetadataDoesNotMutateReceiver(t *testing.T) {
	base := New(CodeInvalidArgument, "bad")
	_ = base.WithMetadata("k", "v")

	assert.Empty(t, base.Metadata)
}
