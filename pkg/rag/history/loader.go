package history

import (
	"context"

	"github.com/google/uuid"

	"ai-legalaid-be/internal/constant"
	"ai-legalaid-be/internal/repository/specification"
	"ai-legalaid-be/internal/repository/unitofwork"
	"ai-legalaid-be/pkg/llm"
)

// Loader reads committed exchanges back as chat messages for the prompt
// window.
type Loader struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewLoader(uowFactory unitofwork.RepositoryFactory) *Loader {
	return &Loader{uowFactory: uowFactory}
}

// LoadWindow returns the most recent `window` exchanges of a session as
// alternating user/model messages in chronological order. Degraded exchanges
// are included; their fallback answers are part of the conversation the user
// saw.
func (l *Loader) LoadWindow(ctx context.Context, sessionId uuid.UUID, window int) ([]llm.Message, error) {
	if window <= 0 {
		return nil, nil
	}

	uow := l.uowFactory.NewUnitOfWork(ctx)
	exchanges, err := uow.ExchangeRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: window, Offset: 0},
	)
	if err != nil {
		return nil, err
	}

	messages := make([]llm.Message, 0, len(exchanges)*2)
	for i := len(exchanges) - 1; i >= 0; i-- {
		ex := exchanges[i]
		messages = append(messages,
			llm.Message{Role: constant.ChatMessageRoleUser, Content: ex.QueryText},
			llm.Message{Role: constant.ChatMessageRoleModel, Content: ex.AnswerText},
		)
	}

	return messages, nil
}
