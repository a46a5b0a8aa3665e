package contract

import (
	"context"

	"github.com/google/uuid"

	"ai-legalaid-be/internal/entity"
	"ai-legalaid-be/internal/repository/specification"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error)
	UpdateTitle(ctx context.Context, id uuid.UUID, title string) error
	UpdateState(ctx context.Context, id uuid.UUID, state string) error
	Touch(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
