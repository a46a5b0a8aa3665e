package implementation

import (
	"context"
	"errors"

	"ai-legalaid-be/internal/entity"
	"ai-legalaid-be/internal/mapper"
	"ai-legalaid-be/internal/model"
	"ai-legalaid-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UnitEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CorpusMapper
}

func NewUnitEmbeddingRepository(db *gorm.DB) contract.UnitEmbeddingRepository {
	return &UnitEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewCorpusMapper(),
	}
}

// Upsert keeps at most one embedding row per reference unit. Re-embedding a
// unit replaces the old vector in place.
func (r *UnitEmbeddingRepositoryImpl) Upsert(ctx context.Context, embedding *entity.UnitEmbedding) error {
	m := r.mapper.UnitEmbeddingToModel(embedding)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "reference_unit_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"embedding_value", "updated_at"}),
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*embedding = *r.mapper.UnitEmbeddingToEntity(m)
	return nil
}

func (r *UnitEmbeddingRepositoryImpl) FindByReferenceUnitId(ctx context.Context, referenceUnitId uuid.UUID) (*entity.UnitEmbedding, error) {
	var m model.UnitEmbedding
	err := r.db.WithContext(ctx).
		Where("reference_unit_id = ?", referenceUnitId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.UnitEmbeddingToEntity(&m), nil
}

// SearchSimilarWithScore returns embeddings with similarity scores, filtered
// by threshold. Cosine distance in pgvector is 1 - cosine_similarity, so
// 1 - (embedding_value <=> query_vector) recovers the similarity.
func (r *UnitEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, queryEmbedding []float32, limit int, threshold float64) ([]*contract.ScoredUnitEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.UnitEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(queryEmbedding)

	err := r.db.WithContext(ctx).
		Table("unit_embeddings").
		Select("unit_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredUnitEmbedding, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredUnitEmbedding{
			Embedding:  r.mapper.UnitEmbeddingToEntity(&res.UnitEmbedding),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}

func (r *UnitEmbeddingRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UnitEmbedding{}).Count(&count).Error
	return count, err
}
