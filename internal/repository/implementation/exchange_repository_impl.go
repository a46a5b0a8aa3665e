package implementation

import (
	"context"
	"errors"

	"ai-legalaid-be/internal/entity"
	"ai-legalaid-be/internal/mapper"
	"ai-legalaid-be/internal/model"
	"ai-legalaid-be/internal/repository/contract"
	"ai-legalaid-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExchangeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewExchangeRepository(db *gorm.DB) contract.ExchangeRepository {
	return &ExchangeRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ExchangeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ExchangeRepositoryImpl) Create(ctx context.Context, exchange *entity.Exchange) error {
	m := r.mapper.ExchangeToModel(exchange)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	citations := exchange.Citations
	*exchange = *r.mapper.ExchangeToEntity(m)
	exchange.Citations = citations
	return nil
}

func (r *ExchangeRepositoryImpl) CreateCitations(ctx context.Context, citations []*entity.ExchangeCitation) error {
	if len(citations) == 0 {
		return nil
	}
	models := make([]*model.ExchangeCitation, len(citations))
	for i, c := range citations {
		models[i] = r.mapper.CitationToModel(c)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*citations[i] = *r.mapper.CitationToEntity(m)
	}
	return nil
}

func (r *ExchangeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Exchange, error) {
	var m model.Exchange
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ExchangeToEntity(&m), nil
}

func (r *ExchangeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Exchange, error) {
	var models []*model.Exchange
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Exchange, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ExchangeToEntity(m)
	}
	return entities, nil
}

func (r *ExchangeRepositoryImpl) FindCitations(ctx context.Context, exchangeId uuid.UUID) ([]*entity.ExchangeCitation, error) {
	var models []*model.ExchangeCitation
	err := r.db.WithContext(ctx).
		Where("exchange_id = ?", exchangeId).
		Order("rank ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	entities := make([]*entity.ExchangeCitation, len(models))
	for i, m := range models {
		entities[i] = r.mapper.CitationToEntity(m)
	}
	return entities, nil
}

func (r *ExchangeRepositoryImpl) CountBySessionIds(ctx context.Context, sessionIds []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(sessionIds))
	if len(sessionIds) == 0 {
		return counts, nil
	}

	type row struct {
		ChatSessionId uuid.UUID
		Total         int64
	}
	var rows []row

	err := r.db.WithContext(ctx).
		Model(&model.Exchange{}).
		Select("chat_session_id, COUNT(*) as total").
		Where("chat_session_id IN ?", sessionIds).
		Group("chat_session_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		counts[r.ChatSessionId] = r.Total
	}
	return counts, nil
}

func (r *ExchangeRepositoryImpl) CreateFeedback(ctx context.Context, feedback *entity.ExchangeFeedback) error {
	m := r.mapper.FeedbackToModel(feedback)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	feedback.Id = m.Id
	feedback.CreatedAt = m.CreatedAt
	return nil
}

func (r *ExchangeRepositoryImpl) UpdateRating(ctx context.Context, exchangeId uuid.UUID, rating int) error {
	return r.db.WithContext(ctx).
		Model(&model.Exchange{}).
		Where("id = ?", exchangeId).
		Update("user_rating", rating).Error
}

func (r *ExchangeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Exchange{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
