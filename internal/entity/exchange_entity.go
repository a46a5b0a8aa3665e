package entity

import (
	"time"

	"github.com/google/uuid"
)

// Exchange is one committed query/answer pair within a session. Append-only;
// never edited or removed once committed.
type Exchange struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	UserId        uuid.UUID
	QueryText     string
	AnswerText    string
	Category      string
	Confidence    float64 // [0,1]; 0 for degraded exchanges
	Degraded      bool
	ErrorCode     string // set when Degraded, e.g. MODEL_RATE_LIMITED
	ModelUsed     string
	ResponseTime  time.Duration
	Citations     []ExchangeCitation
	Sources       []SourceSnapshot
	CreatedAt     time.Time
	UserRating    *int // 1-5, set via feedback
}

// SourceSnapshot is the denormalized citation view stored with an exchange,
// so history replay never depends on a corpus lookup.
type SourceSnapshot struct {
	ReferenceUnitId uuid.UUID `json:"reference_unit_id"`
	Title           string    `json:"title"`
	SourceLabel     string    `json:"source_label"`
	SectionLabel    string    `json:"section_label"`
	Score           float64   `json:"score"`
	URL             string    `json:"url,omitempty"`
}

// ExchangeCitation binds an exchange to a reference unit with the relevance
// score the retriever assigned at citation time.
type ExchangeCitation struct {
	Id              uuid.UUID
	ExchangeId      uuid.UUID
	ReferenceUnitId uuid.UUID
	Score           float64
	Rank            int
	CreatedAt       time.Time
}

// ExchangeFeedback is a user rating of one exchange.
type ExchangeFeedback struct {
	Id         uuid.UUID
	ExchangeId uuid.UUID
	UserId     uuid.UUID
	Rating     int // 1-5
	Comment    string
	IsHelpful  *bool
	CreatedAt  time.Time
}
