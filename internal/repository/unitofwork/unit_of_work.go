package unitofwork

import (
	"context"

	"ai-legalaid-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ExchangeRepository() contract.ExchangeRepository
	ReferenceUnitRepository() contract.ReferenceUnitRepository
	UnitEmbeddingRepository() contract.UnitEmbeddingRepository
	AnalyticsRepository() contract.AnalyticsRepository
}
