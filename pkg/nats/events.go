package nats

import (
	"time"

	"github.com/google/uuid"
)

// ExchangeCommittedEvent is broadcast after an exchange row is committed, so
// the notification service can reach users whose HTTP call already ended.
type ExchangeCommittedEvent struct {
	ExchangeId    uuid.UUID `json:"exchange_id"`
	ChatSessionId uuid.UUID `json:"chat_session_id"`
	UserId        uuid.UUID `json:"user_id"`
	Degraded      bool      `json:"degraded"`
	Persisted     bool      `json:"persisted"`
	CommittedAt   time.Time `json:"committed_at"`
}
