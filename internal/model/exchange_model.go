package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Exchange rows are append-only. No update path exists outside of the
// feedback rating column.
type Exchange struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ChatSessionId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	UserId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	QueryText      string         `gorm:"type:text;not null"`
	AnswerText     string         `gorm:"type:text;not null"`
	Category       string         `gorm:"type:varchar(50);not null;default:'general'"`
	Confidence     float64        `gorm:"type:double precision;not null;default:0"`
	Degraded       bool           `gorm:"not null;default:false"`
	ErrorCode      string         `gorm:"type:varchar(50)"`
	ModelUsed      string         `gorm:"type:varchar(100)"`
	ResponseTimeMs int64          `gorm:"not null;default:0"`
	Sources        datatypes.JSON `gorm:"type:jsonb"` // Denormalized source snapshot for history replay
	UserRating     *int
	CreatedAt      time.Time `gorm:"not null;index"`
}

func (Exchange) TableName() string {
	return "exchanges"
}

type ExchangeCitation struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExchangeId      uuid.UUID `gorm:"type:uuid;not null;index"`
	ReferenceUnitId uuid.UUID `gorm:"type:uuid;not null;index"`
	Score           float64   `gorm:"type:double precision;not null"`
	Rank            int       `gorm:"not null;default:0"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`

	// Relationships
	Exchange      *Exchange      `gorm:"foreignKey:ExchangeId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ReferenceUnit *ReferenceUnit `gorm:"foreignKey:ReferenceUnitId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

func (ExchangeCitation) TableName() string {
	return "exchange_citations"
}

type ExchangeFeedback struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExchangeId uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:text"`
	IsHelpful  *bool
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (ExchangeFeedback) TableName() string {
	return "exchange_feedback"
}
