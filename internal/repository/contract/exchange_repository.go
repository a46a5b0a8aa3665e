package contract

import (
	"context"

	"github.com/google/uuid"

	"ai-legalaid-be/internal/entity"
	"ai-legalaid-be/internal/repository/specification"
)

type ExchangeRepository interface {
	Create(ctx context.Context, exchange *entity.Exchange) error
	CreateCitations(ctx context.Context, citations []*entity.ExchangeCitation) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Exchange, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Exchange, error)
	FindCitations(ctx context.Context, exchangeId uuid.UUID) ([]*entity.ExchangeCitation, error)
	CountBySessionIds(ctx context.Context, sessionIds []uuid.UUID) (map[uuid.UUID]int64, error)
	CreateFeedback(ctx context.Context, feedback *entity.ExchangeFeedback) error
	UpdateRating(ctx context.Context, exchangeId uuid.UUID, rating int) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
