package contract

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ai-legalaid-be/internal/entity"
	"ai-legalaid-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
