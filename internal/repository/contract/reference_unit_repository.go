package contract

import (
	"context"

	"ai-legalaid-be/internal/entity"
	"ai-legalaid-be/internal/repository/specification"
)

type ReferenceUnitRepository interface {
	Create(ctx context.Context, unit *entity.ReferenceUnit) error
	CreateBulk(ctx context.Context, units []*entity.ReferenceUnit) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReferenceUnit, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReferenceUnit, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
