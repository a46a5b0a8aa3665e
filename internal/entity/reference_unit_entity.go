package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReferenceUnit is one citable piece of legal text (a statute section, an
// article, a clause). Immutable after corpus load.
type ReferenceUnit struct {
	Id           uuid.UUID
	Title        string
	Body         string
	SourceLabel  string // e.g. "Indian Penal Code 1860"
	SectionLabel string // e.g. "Section 302"
	Category     string
	Keywords     []string
	URL          string
	CreatedAt    time.Time
}

// UnitEmbedding holds the vector for one reference unit, produced by the
// embedding consumer. Only used when the vector retriever is enabled.
type UnitEmbedding struct {
	Id              uuid.UUID
	ReferenceUnitId uuid.UUID
	EmbeddingValue  []float32
	CreatedAt       time.Time
}
