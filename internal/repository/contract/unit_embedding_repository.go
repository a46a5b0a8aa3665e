package contract

import (
	"context"

	"github.com/google/uuid"

	"ai-legalaid-be/internal/entity"
)

// ScoredUnitEmbedding pairs an embedding row with its cosine similarity
// against the query vector.
type ScoredUnitEmbedding struct {
	Embedding  *entity.UnitEmbedding
	Similarity float64
}

type UnitEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding *entity.UnitEmbedding) error
	FindByReferenceUnitId(ctx context.Context, referenceUnitId uuid.UUID) (*entity.UnitEmbedding, error)
	SearchSimilarWithScore(ctx context.Context, queryEmbedding []float32, limit int, threshold float64) ([]*ScoredUnitEmbedding, error)
	Count(ctx context.Context) (int64, error)
}
