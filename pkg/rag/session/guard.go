package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"ai-legalaid-be/internal/pkg/apperror"
)

// Guard enforces at-most-one in-flight query per session. Entries expire
// after the TTL so a crashed pipeline cannot wedge a session forever.
type Guard struct {
	inflight *cache.Cache
}

func NewGuard(ttl time.Duration) *Guard {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &Guard{
		inflight: cache.New(ttl, ttl*2),
	}
}

// Acquire claims the session. cache.Add is atomic under the cache mutex, so
// exactly one of two concurrent callers wins.
func (g *Guard) Acquire(sessionId uuid.UUID) error {
	if err := g.inflight.Add(sessionId.String(), struct{}{}, cache.DefaultExpiration); err != nil {
		return apperror.SessionBusy("a query is already in flight for this session")
	}
	return nil
}

func (g *Guard) Release(sessionId uuid.UUID) {
	g.inflight.Delete(sessionId.String())
}
