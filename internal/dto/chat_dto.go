package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	// SessionId is optional: absent means start a new session with this query.
	SessionId *uuid.UUID `json:"session_id,omitempty"`
	Message   string     `json:"message" validate:"required,min=1,max=4000"`
}

type SourceDTO struct {
	ReferenceUnitId uuid.UUID `json:"reference_unit_id"`
	Title           string    `json:"title"`
	Excerpt         string    `json:"excerpt"`
	SourceLabel     string    `json:"source_label"`
	SectionLabel    string    `json:"section_label"`
	URL             string    `json:"url,omitempty"`
	Score           float64   `json:"score"`
}

type SendMessageResponse struct {
	SessionId    uuid.UUID   `json:"session_id"`
	SessionTitle string      `json:"session_title"`
	ExchangeId   uuid.UUID   `json:"exchange_id"`
	Answer       string      `json:"answer"`
	Confidence   float64     `json:"confidence"`
	Category     string      `json:"category"`
	Degraded     bool        `json:"degraded"`
	ErrorCode    string      `json:"error_code,omitempty"`
	Persisted    bool        `json:"persisted"`
	Sources      []SourceDTO `json:"sources"`
	CreatedAt    time.Time   `json:"created_at"`
}

type SessionSummaryResponse struct {
	SessionId     uuid.UUID  `json:"session_id"`
	Title         string     `json:"title"`
	State         string     `json:"state"`
	ExchangeCount int64      `json:"exchange_count"`
	CreatedAt     time.Time  `json:"created_at"`
	LastUpdated   *time.Time `json:"last_updated,omitempty"`
}

type ExchangeHistoryResponse struct {
	ExchangeId uuid.UUID   `json:"exchange_id"`
	QueryText  string      `json:"query_text"`
	AnswerText string      `json:"answer_text"`
	Category   string      `json:"category"`
	Confidence float64     `json:"confidence"`
	Degraded   bool        `json:"degraded"`
	ErrorCode  string      `json:"error_code,omitempty"`
	Sources    []SourceDTO `json:"sources"`
	UserRating *int        `json:"user_rating,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

type FeedbackRequest struct {
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"omitempty,max=2000"`
	IsHelpful *bool  `json:"is_helpful,omitempty"`
}
