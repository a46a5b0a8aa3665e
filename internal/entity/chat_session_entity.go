package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     string
	State     string // constant.SessionState*
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// SessionSummary is the listing projection: a session plus its exchange count.
type SessionSummary struct {
	Session       ChatSession
	ExchangeCount int64
}
