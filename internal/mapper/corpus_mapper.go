package mapper

import (
	"encoding/json"

	"ai-legalaid-be/internal/entity"
	"ai-legalaid-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type CorpusMapper struct{}

func NewCorpusMapper() *CorpusMapper {
	return &CorpusMapper{}
}

func (m *CorpusMapper) ReferenceUnitToEntity(u *model.ReferenceUnit) *entity.ReferenceUnit {
	if u == nil {
		return nil
	}

	var keywords []string
	if len(u.Keywords) > 0 {
		// A corrupt keywords column degrades to keyword-less scoring.
		_ = json.Unmarshal(u.Keywords, &keywords)
	}

	return &entity.ReferenceUnit{
		Id:           u.Id,
		Title:        u.Title,
		Body:         u.Body,
		SourceLabel:  u.SourceLabel,
		SectionLabel: u.SectionLabel,
		Category:     u.Category,
		Keywords:     keywords,
		URL:          u.URL,
		CreatedAt:    u.CreatedAt,
	}
}

func (m *CorpusMapper) ReferenceUnitToModel(u *entity.ReferenceUnit) *model.ReferenceUnit {
	if u == nil {
		return nil
	}

	var keywords datatypes.JSON
	if len(u.Keywords) > 0 {
		raw, err := json.Marshal(u.Keywords)
		if err == nil {
			keywords = raw
		}
	}

	return &model.ReferenceUnit{
		Id:           u.Id,
		Title:        u.Title,
		Body:         u.Body,
		SourceLabel:  u.SourceLabel,
		SectionLabel: u.SectionLabel,
		Category:     u.Category,
		Keywords:     keywords,
		URL:          u.URL,
		CreatedAt:    u.CreatedAt,
	}
}

func (m *CorpusMapper) UnitEmbeddingToEntity(e *model.UnitEmbedding) *entity.UnitEmbedding {
	if e == nil {
		return nil
	}

	return &entity.UnitEmbedding{
		Id:              e.Id,
		ReferenceUnitId: e.ReferenceUnitId,
		EmbeddingValue:  e.EmbeddingValue.Slice(),
		CreatedAt:       e.CreatedAt,
	}
}

func (m *CorpusMapper) UnitEmbeddingToModel(e *entity.UnitEmbedding) *model.UnitEmbedding {
	if e == nil {
		return nil
	}

	return &model.UnitEmbedding{
		Id:              e.Id,
		ReferenceUnitId: e.ReferenceUnitId,
		EmbeddingValue:  pgvector.NewVector(e.EmbeddingValue),
		CreatedAt:       e.CreatedAt,
	}
}
