package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("chat session")))
	assert.Equal(t, KindSessionBusy, KindOf(SessionBusy("busy")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain error")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindOfUnwrapsChains(t *testing.T) {
	inner := Wrap(KindModelTimeout, "deadline hit", errors.New("context deadline exceeded"))
	wrapped := fmt.Errorf("calling provider: %w", inner)

	assert.Equal(t, KindModelTimeout, KindOf(wrapped))
}

func TestErrorsIsMatchesOnKind(t *testing.T) {
	err := Wrap(KindModelRateLimited, "quota exhausted", errors.New("429"))

	assert.True(t, errors.Is(err, ErrModelRateLimited))
	assert.False(t, errors.Is(err, ErrModelTimeout))

	wrapped := fmt.Errorf("generate: %w", err)
	assert.True(t, errors.Is(wrapped, ErrModelRateLimited))
}

func TestIsModelFailure(t *testing.T) {
	assert.True(t, IsModelFailure(ErrModelUnavailable))
	assert.True(t, IsModelFailure(ErrModelTimeout))
	assert.True(t, IsModelFailure(ErrModelRateLimited))
	assert.False(t, IsModelFailure(NotFound("exchange")))
	assert.False(t, IsModelFailure(errors.New("other")))
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := StorageUnavailable(cause)

	assert.Contains(t, err.Error(), "storage unavailable")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, cause, errors.Unwrap(err))
}
