package session

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ai-legalaid-be/internal/pkg/apperror"
)

func TestGuardAcquireRelease(t *testing.T) {
	guard := NewGuard(time.Minute)
	sessionId := uuid.New()

	assert.NoError(t, guard.Acquire(sessionId))

	err := guard.Acquire(sessionId)
	assert.Error(t, err)
	assert.Equal(t, apperror.KindSessionBusy, apperror.KindOf(err))

	guard.Release(sessionId)
	assert.NoError(t, guard.Acquire(sessionId))
}

func TestGuardSessionsAreIndependent(t *testing.T) {
	guard := NewGuard(time.Minute)

	assert.NoError(t, guard.Acquire(uuid.New()))
	assert.NoError(t, guard.Acquire(uuid.New()))
}

// Exactly one of N concurrent acquirers may win.
func TestGuardConcurrentAcquire(t *testing.T) {
	guard := NewGuard(time.Minute)
	sessionId := uuid.New()

	const attempts = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if guard.Acquire(sessionId) == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestGuardEntryExpires(t *testing.T) {
	guard := NewGuard(20 * time.Millisecond)
	sessionId := uuid.New()

	assert.NoError(t, guard.Acquire(sessionId))
	time.Sleep(50 * time.Millisecond)
	assert.NoError(t, guard.Acquire(sessionId))
}
