package service

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ai-legalaid-be/internal/dto"
	"ai-legalaid-be/internal/entity"
	"ai-legalaid-be/internal/repository/contract"
	"ai-legalaid-be/internal/repository/specification"
	"ai-legalaid-be/internal/repository/unitofwork"
	"ai-legalaid-be/pkg/corpus"
	"ai-legalaid-be/pkg/llm"
	pktNats "ai-legalaid-be/pkg/nats"
	"ai-legalaid-be/pkg/rag/compose"
	"ai-legalaid-be/pkg/rag/history"
	"ai-legalaid-be/pkg/rag/retrieval"
	"ai-legalaid-be/pkg/rag/session"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type stubProvider struct {
	answer string
}

func (p *stubProvider) Chat(context.Context, []llm.Message, ...llm.Option) (string, error) {
	return p.answer, nil
}

func (p *stubProvider) Generate(context.Context, string, ...llm.Option) (string, error) {
	return p.answer, nil
}

func (p *stubProvider) Name() string { return "stub/test-model" }

type stubChatSessionRepo struct {
	sessions     []*entity.ChatSession
	findAllSpecs []specification.Specification
	created      *entity.ChatSession
}

func (r *stubChatSessionRepo) Create(_ context.Context, s *entity.ChatSession) error {
	r.created = s
	return nil
}

func (r *stubChatSessionRepo) FindOne(context.Context, ...specification.Specification) (*entity.ChatSession, error) {
	return nil, nil
}

func (r *stubChatSessionRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	r.findAllSpecs = specs
	return r.sessions, nil
}

func (r *stubChatSessionRepo) UpdateTitle(context.Context, uuid.UUID, string) error { return nil }
func (r *stubChatSessionRepo) UpdateState(context.Context, uuid.UUID, string) error { return nil }
func (r *stubChatSessionRepo) Touch(context.Context, uuid.UUID) error               { return nil }
func (r *stubChatSessionRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return 0, nil
}

type stubExchangeRepo struct {
	counts  map[uuid.UUID]int64
	created *entity.Exchange
}

func (r *stubExchangeRepo) Create(_ context.Context, ex *entity.Exchange) error {
	r.created = ex
	return nil
}

func (r *stubExchangeRepo) CreateCitations(context.Context, []*entity.ExchangeCitation) error {
	return nil
}

func (r *stubExchangeRepo) FindOne(context.Context, ...specification.Specification) (*entity.Exchange, error) {
	return nil, nil
}

func (r *stubExchangeRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.Exchange, error) {
	return nil, nil
}

func (r *stubExchangeRepo) FindCitations(context.Context, uuid.UUID) ([]*entity.ExchangeCitation, error) {
	return nil, nil
}

func (r *stubExchangeRepo) CountBySessionIds(context.Context, []uuid.UUID) (map[uuid.UUID]int64, error) {
	return r.counts, nil
}

func (r *stubExchangeRepo) CreateFeedback(context.Context, *entity.ExchangeFeedback) error {
	return nil
}

func (r *stubExchangeRepo) UpdateRating(context.Context, uuid.UUID, int) error { return nil }
func (r *stubExchangeRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return 0, nil
}

type stubAnalyticsRepo struct{}

func (stubAnalyticsRepo) IncrementMetric(context.Context, string, int64) error { return nil }
func (stubAnalyticsRepo) GetMetric(context.Context, string) (int64, error)     { return 0, nil }
func (stubAnalyticsRepo) GetAllMetrics(context.Context) (map[string]int64, error) {
	return nil, nil
}

type stubUow struct {
	chatSessions *stubChatSessionRepo
	exchanges    *stubExchangeRepo
}

func (u *stubUow) Begin(context.Context) error { return nil }
func (u *stubUow) Commit() error               { return nil }
func (u *stubUow) Rollback() error             { return nil }

func (u *stubUow) UserRepository() contract.UserRepository { return nil }
func (u *stubUow) ChatSessionRepository() contract.ChatSessionRepository {
	return u.chatSessions
}
func (u *stubUow) ExchangeRepository() contract.ExchangeRepository { return u.exchanges }
func (u *stubUow) ReferenceUnitRepository() contract.ReferenceUnitRepository { return nil }
func (u *stubUow) UnitEmbeddingRepository() contract.UnitEmbeddingRepository { return nil }
func (u *stubUow) AnalyticsRepository() contract.AnalyticsRepository {
	return stubAnalyticsRepo{}
}

type stubFactory struct {
	uow *stubUow
}

func (f *stubFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork { return f.uow }

type capturingPublisher struct {
	ctx   context.Context
	event pktNats.ExchangeCommittedEvent
}

func (p *capturingPublisher) PublishExchangeCommitted(ctx context.Context, event pktNats.ExchangeCommittedEvent) error {
	p.ctx = ctx
	p.event = event
	return nil
}

func pipelineService(t *testing.T, factory *stubFactory, publisher IExchangeEventPublisher) IChatService {
	t.Helper()

	store := corpus.NewStore()
	err := store.Load([]*entity.ReferenceUnit{
		{
			Id:       uuid.New(),
			Title:    "Twin clause",
			Body:     "identical text",
			Category: "civil",
		},
	})
	assert.NoError(t, err)

	composer := compose.NewComposer(&stubProvider{answer: "An answer [1]."}, compose.Config{}, nopLogger{})

	return NewChatService(
		factory,
		store,
		retrieval.NewLexicalRetriever(store, 0.0),
		composer,
		history.NewLoader(factory),
		session.NewGuard(time.Minute),
		publisher,
		nopLogger{},
		ChatConfig{},
	)
}

// A caller that disconnects mid-request must not cancel the commit or the
// committed event: both run on a detached context.
func TestSendMessageSurvivesCancelledRequestContext(t *testing.T) {
	factory := &stubFactory{uow: &stubUow{
		chatSessions: &stubChatSessionRepo{},
		exchanges:    &stubExchangeRepo{},
	}}
	publisher := &capturingPublisher{}
	svc := pipelineService(t, factory, publisher)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := svc.SendMessage(ctx, uuid.New(), &dto.SendMessageRequest{Message: "tell me about twin clause"})
	assert.NoError(t, err)
	assert.True(t, res.Persisted)

	assert.NotNil(t, publisher.ctx)
	assert.NoError(t, publisher.ctx.Err())
	assert.Equal(t, res.ExchangeId, publisher.event.ExchangeId)
	assert.True(t, publisher.event.Persisted)
}

func TestListSessionsOrdersByLastUpdated(t *testing.T) {
	now := time.Now()
	earlier := now.Add(-time.Hour)

	newest := &entity.ChatSession{Id: uuid.New(), Title: "newest", State: "active", UpdatedAt: &now}
	older := &entity.ChatSession{Id: uuid.New(), Title: "older", State: "active", UpdatedAt: &earlier}

	repo := &stubChatSessionRepo{sessions: []*entity.ChatSession{newest, older}}
	factory := &stubFactory{uow: &stubUow{
		chatSessions: repo,
		exchanges:    &stubExchangeRepo{counts: map[uuid.UUID]int64{newest.Id: 3}},
	}}
	svc := pipelineService(t, factory, nil)

	res, err := svc.ListSessions(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, newest.Id, res[0].SessionId)
	assert.Equal(t, int64(3), res[0].ExchangeCount)

	assert.Contains(t, repo.findAllSpecs, specification.OrderBy{Field: "updated_at", Desc: true})
}

func TestSessionTitle(t *testing.T) {
	assert.Equal(t, "What is Article 21?", sessionTitle("What is Article 21?"))
	assert.Equal(t, "collapses internal whitespace", sessionTitle("collapses   internal\n whitespace"))

	long := strings.Repeat("word ", 40)
	title := sessionTitle(long)
	assert.True(t, strings.HasSuffix(title, "..."))
	assert.LessOrEqual(t, utf8.RuneCountInString(title), maxSessionTitleLen+3)
}

// Titles built from Devanagari queries must stay valid UTF-8 after
// truncation.
func TestSessionTitleKeepsRuneBoundaries(t *testing.T) {
	title := sessionTitle(strings.Repeat("अधिकार ", 15))
	assert.True(t, utf8.ValidString(title))
	assert.True(t, strings.HasSuffix(title, "..."))
	assert.LessOrEqual(t, utf8.RuneCountInString(title), maxSessionTitleLen+3)
}

func TestExcerptOf(t *testing.T) {
	short := "short body"
	assert.Equal(t, short, excerptOf(short))

	long := strings.Repeat("x", excerptLen*2)
	excerpt := excerptOf(long)
	assert.True(t, strings.HasSuffix(excerpt, "..."))
	assert.LessOrEqual(t, utf8.RuneCountInString(excerpt), excerptLen+3)

	multibyte := excerptOf(strings.Repeat("धारा ", 100))
	assert.True(t, utf8.ValidString(multibyte))
}
