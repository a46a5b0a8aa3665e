package retrieval

import (
	"context"

	"ai-legalaid-be/internal/entity"
)

// ScoredUnit is one retrieved reference unit with its relevance in [0,1].
type ScoredUnit struct {
	Unit  *entity.ReferenceUnit
	Raw   float64 // provider-specific raw score, kept for debugging
	Score float64 // normalized relevance
}

// Retriever selects reference units relevant to a query. Implementations
// return apperror.NotReady when the corpus is empty; an empty result for a
// loaded corpus is not an error.
type Retriever interface {
	Retrieve(ctx context.Context, query string, limit int) ([]ScoredUnit, error)
}
