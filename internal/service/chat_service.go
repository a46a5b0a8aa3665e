package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"ai-legalaid-be/internal/constant"
	"ai-legalaid-be/internal/dto"
	"ai-legalaid-be/internal/entity"
	"ai-legalaid-be/internal/pkg/apperror"
	"ai-legalaid-be/internal/pkg/logger"
	"ai-legalaid-be/internal/repository/specification"
	"ai-legalaid-be/internal/repository/unitofwork"
	"ai-legalaid-be/pkg/corpus"
	pktNats "ai-legalaid-be/pkg/nats"
	"ai-legalaid-be/pkg/rag/compose"
	"ai-legalaid-be/pkg/rag/history"
	"ai-legalaid-be/pkg/rag/retrieval"
	"ai-legalaid-be/pkg/rag/session"
)

const (
	metricTotalSessions   = "total_sessions"
	metricTotalQueries    = "total_queries"
	metricDegradedQueries = "degraded_queries"

	maxSessionTitleLen = 80
	excerptLen         = 240
)

type ChatConfig struct {
	RetrievalLimit int
	HistoryWindow  int
}

// IExchangeEventPublisher is the slice of the NATS publisher the chat
// service needs to announce committed exchanges.
type IExchangeEventPublisher interface {
	PublishExchangeCommitted(ctx context.Context, event pktNats.ExchangeCommittedEvent) error
}

type IChatService interface {
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.SessionSummaryResponse, error)
	GetHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.ExchangeHistoryResponse, error)
	ArchiveSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error
	SubmitFeedback(ctx context.Context, userId uuid.UUID, exchangeId uuid.UUID, req *dto.FeedbackRequest) error
}

type chatService struct {
	uowFactory     unitofwork.RepositoryFactory
	store          *corpus.Store
	retriever      retrieval.Retriever
	composer       *compose.Composer
	historyLoader  *history.Loader
	guard          *session.Guard
	eventPublisher IExchangeEventPublisher
	logger         logger.ILogger
	cfg            ChatConfig
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	store *corpus.Store,
	retriever retrieval.Retriever,
	composer *compose.Composer,
	historyLoader *history.Loader,
	guard *session.Guard,
	eventPublisher IExchangeEventPublisher,
	log logger.ILogger,
	cfg ChatConfig,
) IChatService {
	if cfg.RetrievalLimit <= 0 {
		cfg.RetrievalLimit = 5
	}
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = 6
	}
	return &chatService{
		uowFactory:     uowFactory,
		store:          store,
		retriever:      retriever,
		composer:       composer,
		historyLoader:  historyLoader,
		guard:          guard,
		eventPublisher: eventPublisher,
		logger:         log,
		cfg:            cfg,
	}
}

// SendMessage runs the whole pipeline for one query: resolve or create the
// session, retrieve, compose, persist, notify. Generation failures come back
// as a degraded answer; only ownership, state and storage failures error out.
func (s *chatService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	if !s.store.Ready() {
		return nil, apperror.NotReady("corpus not loaded, try again shortly")
	}

	query := strings.TrimSpace(req.Message)
	if query == "" {
		return nil, apperror.BadRequest("message must not be empty")
	}

	chatSession, created, err := s.resolveSession(ctx, userId, req.SessionId, query)
	if err != nil {
		return nil, err
	}

	// One in-flight query per session. A second concurrent sender gets
	// SessionBusy instead of interleaved history.
	if err := s.guard.Acquire(chatSession.Id); err != nil {
		return nil, err
	}
	defer s.guard.Release(chatSession.Id)

	start := time.Now()

	retrieved, err := s.retriever.Retrieve(ctx, query, s.cfg.RetrievalLimit)
	if err != nil {
		return nil, err
	}

	historyMessages, err := s.historyLoader.LoadWindow(ctx, chatSession.Id, s.cfg.HistoryWindow)
	if err != nil {
		s.logger.Warn("ChatService", "History load failed, composing without context", map[string]interface{}{
			"session_id": chatSession.Id,
			"error":      err.Error(),
		})
		historyMessages = nil
	}

	composition, err := s.composer.Compose(ctx, query, historyMessages, retrieved)
	if err != nil {
		return nil, err
	}

	exchange := s.buildExchange(chatSession, userId, query, composition, time.Since(start))

	// Persist and publish on a detached context: a client that disconnected
	// mid-request must not abort the commit or the committed event for an
	// already generated answer.
	detached := context.WithoutCancel(ctx)

	persisted := true
	if err := s.commitExchange(detached, chatSession, exchange, created); err != nil {
		persisted = false
		s.logger.Error("ChatService", "Exchange commit failed, returning unpersisted answer", map[string]interface{}{
			"session_id": chatSession.Id,
			"error":      err.Error(),
		})
	}

	s.publishCommitted(detached, exchange, persisted)

	return s.toSendMessageResponse(chatSession, exchange, composition, persisted), nil
}

// resolveSession loads and checks an existing session, or creates a fresh one
// titled after the first query.
func (s *chatService) resolveSession(ctx context.Context, userId uuid.UUID, sessionId *uuid.UUID, query string) (*entity.ChatSession, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if sessionId != nil {
		chatSession, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: *sessionId})
		if err != nil {
			return nil, false, apperror.StorageUnavailable(err)
		}
		if chatSession == nil {
			return nil, false, apperror.NotFound("chat session")
		}
		if chatSession.UserId != userId {
			return nil, false, apperror.Forbidden("chat session belongs to another user")
		}
		if chatSession.State == constant.SessionStateArchived {
			return nil, false, apperror.SessionArchived("chat session is archived")
		}
		return chatSession, false, nil
	}

	chatSession := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     sessionTitle(query),
		State:     constant.SessionStateNew,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, chatSession); err != nil {
		return nil, false, apperror.StorageUnavailable(err)
	}
	return chatSession, true, nil
}

func (s *chatService) buildExchange(chatSession *entity.ChatSession, userId uuid.UUID, query string, composition *compose.Composition, elapsed time.Duration) *entity.Exchange {
	exchange := &entity.Exchange{
		Id:            uuid.New(),
		ChatSessionId: chatSession.Id,
		UserId:        userId,
		QueryText:     query,
		AnswerText:    composition.Answer,
		Category:      composition.Category,
		Confidence:    composition.Confidence,
		Degraded:      composition.Degraded,
		ErrorCode:     composition.ErrorCode,
		ModelUsed:     composition.ModelUsed,
		ResponseTime:  elapsed,
		CreatedAt:     time.Now(),
	}

	for _, citation := range composition.Citations {
		exchange.Citations = append(exchange.Citations, entity.ExchangeCitation{
			Id:              uuid.New(),
			ExchangeId:      exchange.Id,
			ReferenceUnitId: citation.Unit.Id,
			Score:           citation.Score,
			Rank:            citation.Rank,
			CreatedAt:       exchange.CreatedAt,
		})
		exchange.Sources = append(exchange.Sources, entity.SourceSnapshot{
			ReferenceUnitId: citation.Unit.Id,
			Title:           citation.Unit.Title,
			SourceLabel:     citation.Unit.SourceLabel,
			SectionLabel:    citation.Unit.SectionLabel,
			Score:           citation.Score,
			URL:             citation.Unit.URL,
		})
	}
	return exchange
}

// commitExchange writes the exchange, its citations, session state and the
// usage metrics in one transaction.
func (s *chatService) commitExchange(ctx context.Context, chatSession *entity.ChatSession, exchange *entity.Exchange, created bool) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ExchangeRepository().Create(ctx, exchange); err != nil {
		return err
	}

	if len(exchange.Citations) > 0 {
		citations := make([]*entity.ExchangeCitation, len(exchange.Citations))
		for i := range exchange.Citations {
			citations[i] = &exchange.Citations[i]
		}
		if err := uow.ExchangeRepository().CreateCitations(ctx, citations); err != nil {
			return err
		}
	}

	if chatSession.State == constant.SessionStateNew {
		if err := uow.ChatSessionRepository().UpdateState(ctx, chatSession.Id, constant.SessionStateActive); err != nil {
			return err
		}
		chatSession.State = constant.SessionStateActive
	}
	if err := uow.ChatSessionRepository().Touch(ctx, chatSession.Id); err != nil {
		return err
	}

	if created {
		if err := uow.AnalyticsRepository().IncrementMetric(ctx, metricTotalSessions, 1); err != nil {
			return err
		}
	}
	if err := uow.AnalyticsRepository().IncrementMetric(ctx, metricTotalQueries, 1); err != nil {
		return err
	}
	if exchange.Degraded {
		if err := uow.AnalyticsRepository().IncrementMetric(ctx, metricDegradedQueries, 1); err != nil {
			return err
		}
	}

	return uow.Commit()
}

func (s *chatService) publishCommitted(ctx context.Context, exchange *entity.Exchange, persisted bool) {
	if s.eventPublisher == nil {
		return
	}
	evt := pktNats.ExchangeCommittedEvent{
		ExchangeId:    exchange.Id,
		ChatSessionId: exchange.ChatSessionId,
		UserId:        exchange.UserId,
		Degraded:      exchange.Degraded,
		Persisted:     persisted,
		CommittedAt:   time.Now(),
	}
	if err := s.eventPublisher.PublishExchangeCommitted(ctx, evt); err != nil {
		s.logger.Warn("ChatService", "Failed to publish exchange event", map[string]interface{}{
			"exchange_id": exchange.Id,
			"error":       err.Error(),
		})
	}
}

func (s *chatService) toSendMessageResponse(chatSession *entity.ChatSession, exchange *entity.Exchange, composition *compose.Composition, persisted bool) *dto.SendMessageResponse {
	sources := make([]dto.SourceDTO, 0, len(composition.Citations))
	for _, citation := range composition.Citations {
		sources = append(sources, dto.SourceDTO{
			ReferenceUnitId: citation.Unit.Id,
			Title:           citation.Unit.Title,
			Excerpt:         excerptOf(citation.Unit.Body),
			SourceLabel:     citation.Unit.SourceLabel,
			SectionLabel:    citation.Unit.SectionLabel,
			URL:             citation.Unit.URL,
			Score:           citation.Score,
		})
	}

	return &dto.SendMessageResponse{
		SessionId:    chatSession.Id,
		SessionTitle: chatSession.Title,
		ExchangeId:   exchange.Id,
		Answer:       exchange.AnswerText,
		Confidence:   exchange.Confidence,
		Category:     exchange.Category,
		Degraded:     exchange.Degraded,
		ErrorCode:    exchange.ErrorCode,
		Persisted:    persisted,
		Sources:      sources,
		CreatedAt:    exchange.CreatedAt,
	}
}

func (s *chatService) ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.SessionSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, apperror.StorageUnavailable(err)
	}

	sessionIds := make([]uuid.UUID, 0, len(sessions))
	for _, chatSession := range sessions {
		sessionIds = append(sessionIds, chatSession.Id)
	}

	counts := map[uuid.UUID]int64{}
	if len(sessionIds) > 0 {
		counts, err = uow.ExchangeRepository().CountBySessionIds(ctx, sessionIds)
		if err != nil {
			return nil, apperror.StorageUnavailable(err)
		}
	}

	responses := make([]*dto.SessionSummaryResponse, 0, len(sessions))
	for _, chatSession := range sessions {
		responses = append(responses, &dto.SessionSummaryResponse{
			SessionId:     chatSession.Id,
			Title:         chatSession.Title,
			State:         chatSession.State,
			ExchangeCount: counts[chatSession.Id],
			CreatedAt:     chatSession.CreatedAt,
			LastUpdated:   chatSession.UpdatedAt,
		})
	}
	return responses, nil
}

func (s *chatService) GetHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.ExchangeHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chatSession, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, apperror.StorageUnavailable(err)
	}
	if chatSession == nil {
		return nil, apperror.NotFound("chat session")
	}
	if chatSession.UserId != userId {
		return nil, apperror.Forbidden("chat session belongs to another user")
	}

	exchanges, err := uow.ExchangeRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, apperror.StorageUnavailable(err)
	}

	responses := make([]*dto.ExchangeHistoryResponse, 0, len(exchanges))
	for _, exchange := range exchanges {
		sources := make([]dto.SourceDTO, 0, len(exchange.Sources))
		for _, snapshot := range exchange.Sources {
			source := dto.SourceDTO{
				ReferenceUnitId: snapshot.ReferenceUnitId,
				Title:           snapshot.Title,
				SourceLabel:     snapshot.SourceLabel,
				SectionLabel:    snapshot.SectionLabel,
				URL:             snapshot.URL,
				Score:           snapshot.Score,
			}
			// Excerpts are not snapshotted; pull them from the corpus when
			// the unit is still loaded.
			if unit, ok := s.store.Lookup(snapshot.ReferenceUnitId); ok {
				source.Excerpt = excerptOf(unit.Body)
			}
			sources = append(sources, source)
		}

		responses = append(responses, &dto.ExchangeHistoryResponse{
			ExchangeId: exchange.Id,
			QueryText:  exchange.QueryText,
			AnswerText: exchange.AnswerText,
			Category:   exchange.Category,
			Confidence: exchange.Confidence,
			Degraded:   exchange.Degraded,
			ErrorCode:  exchange.ErrorCode,
			Sources:    sources,
			UserRating: exchange.UserRating,
			CreatedAt:  exchange.CreatedAt,
		})
	}
	return responses, nil
}

func (s *chatService) ArchiveSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chatSession, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return apperror.StorageUnavailable(err)
	}
	if chatSession == nil {
		return apperror.NotFound("chat session")
	}
	if chatSession.UserId != userId {
		return apperror.Forbidden("chat session belongs to another user")
	}
	if chatSession.State == constant.SessionStateArchived {
		// Archiving twice is harmless.
		return nil
	}

	if err := uow.ChatSessionRepository().UpdateState(ctx, sessionId, constant.SessionStateArchived); err != nil {
		return apperror.StorageUnavailable(err)
	}
	return nil
}

func (s *chatService) SubmitFeedback(ctx context.Context, userId uuid.UUID, exchangeId uuid.UUID, req *dto.FeedbackRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	exchange, err := uow.ExchangeRepository().FindOne(ctx, specification.ByID{ID: exchangeId})
	if err != nil {
		return apperror.StorageUnavailable(err)
	}
	if exchange == nil {
		return apperror.NotFound("exchange")
	}
	if exchange.UserId != userId {
		return apperror.Forbidden("exchange belongs to another user")
	}

	feedback := &entity.ExchangeFeedback{
		Id:         uuid.New(),
		ExchangeId: exchangeId,
		UserId:     userId,
		Rating:     req.Rating,
		Comment:    req.Comment,
		IsHelpful:  req.IsHelpful,
		CreatedAt:  time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return apperror.StorageUnavailable(err)
	}
	defer uow.Rollback()

	if err := uow.ExchangeRepository().CreateFeedback(ctx, feedback); err != nil {
		return apperror.StorageUnavailable(err)
	}
	if err := uow.ExchangeRepository().UpdateRating(ctx, exchangeId, req.Rating); err != nil {
		return apperror.StorageUnavailable(err)
	}

	if err := uow.Commit(); err != nil {
		return apperror.StorageUnavailable(err)
	}
	return nil
}

func sessionTitle(query string) string {
	return truncateRunes(strings.Join(strings.Fields(query), " "), maxSessionTitleLen)
}

func excerptOf(body string) string {
	return truncateRunes(body, excerptLen)
}

// truncateRunes cuts on a rune boundary so multi-byte scripts never yield
// invalid UTF-8.
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:max])) + "..."
}
