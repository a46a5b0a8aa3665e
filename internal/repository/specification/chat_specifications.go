package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByChatSessionID struct {
	ChatSessionID uuid.UUID
}

func (s ByChatSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_session_id = ?", s.ChatSessionID)
}

type ByState struct {
	State string
}

func (s ByState) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("state = ?", s.State)
}

type ByExchangeID struct {
	ExchangeID uuid.UUID
}

func (s ByExchangeID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("exchange_id = ?", s.ExchangeID)
}
