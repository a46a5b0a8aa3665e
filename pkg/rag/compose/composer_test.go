package compose

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ai-legalaid-be/internal/constant"
	"ai-legalaid-be/internal/entity"
	"ai-legalaid-be/internal/pkg/apperror"
	"ai-legalaid-be/pkg/llm"
	"ai-legalaid-be/pkg/rag/retrieval"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type stubProvider struct {
	answer string
	err    error
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.answer, s.err
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.answer, s.err
}

func (s *stubProvider) Name() string { return "stub/test-model" }

func scoredUnits(scores ...float64) []retrieval.ScoredUnit {
	units := make([]retrieval.ScoredUnit, 0, len(scores))
	for i, score := range scores {
		units = append(units, retrieval.ScoredUnit{
			Unit: &entity.ReferenceUnit{
				Id:           uuid.New(),
				Title:        "Some provision",
				Body:         "Provision body text.",
				SourceLabel:  "Some Act",
				SectionLabel: "Section " + string(rune('1'+i)),
			},
			Score: score,
		})
	}
	return units
}

func newTestComposer(provider llm.LLMProvider) *Composer {
	return NewComposer(provider, Config{
		PromptBudget:    12000,
		CitationPenalty: 0.1,
		GenerateTimeout: time.Second,
	}, nopLogger{})
}

func TestComposeBindsCitationsToMarkers(t *testing.T) {
	provider := &stubProvider{answer: "The act applies [1] and also [2]. Legal disclaimer: educational only."}
	composer := newTestComposer(provider)
	retrieved := scoredUnits(0.8, 0.6, 0.4)

	comp, err := composer.Compose(context.Background(), "does the act apply", nil, retrieved)
	assert.NoError(t, err)
	assert.False(t, comp.Degraded)
	assert.Len(t, comp.Citations, 2)
	assert.Equal(t, retrieved[0].Unit.Id, comp.Citations[0].Unit.Id)
	assert.Equal(t, retrieved[1].Unit.Id, comp.Citations[1].Unit.Id)
	assert.Equal(t, 1, comp.Citations[0].Rank)
	assert.Equal(t, 2, comp.Citations[1].Rank)
	assert.InDelta(t, 0.8, comp.Confidence, 1e-9)
	assert.Equal(t, "stub/test-model", comp.ModelUsed)
}

func TestComposeNeverCitesUnretrievedUnits(t *testing.T) {
	provider := &stubProvider{answer: "Cited [1], [5] and [9]. Disclaimer: educational."}
	composer := newTestComposer(provider)
	retrieved := scoredUnits(0.9, 0.7)

	comp, err := composer.Compose(context.Background(), "question", nil, retrieved)
	assert.NoError(t, err)
	assert.Len(t, comp.Citations, 1)
	assert.Equal(t, retrieved[0].Unit.Id, comp.Citations[0].Unit.Id)
	// Two dangling markers cost 0.1 each.
	assert.InDelta(t, 0.7, comp.Confidence, 1e-9)
}

func TestComposeEmptyRetrievalConfidence(t *testing.T) {
	provider := &stubProvider{answer: "No specific sources were found. Disclaimer: educational."}
	composer := newTestComposer(provider)

	comp, err := composer.Compose(context.Background(), "question", nil, nil)
	assert.NoError(t, err)
	assert.False(t, comp.Degraded)
	assert.Empty(t, comp.Citations)
	assert.InDelta(t, emptyRetrievalConfidence, comp.Confidence, 1e-9)
}

func TestComposeAppendsDisclaimer(t *testing.T) {
	provider := &stubProvider{answer: "Section 73 provides for compensation [1]."}
	composer := newTestComposer(provider)

	comp, err := composer.Compose(context.Background(), "compensation for breach", nil, scoredUnits(0.5))
	assert.NoError(t, err)
	assert.True(t, strings.Contains(strings.ToLower(comp.Answer), "disclaimer"))
}

func TestComposeKeepsExistingDisclaimer(t *testing.T) {
	answer := "Answer text [1]. **Legal Disclaimer:** educational use only."
	provider := &stubProvider{answer: answer}
	composer := newTestComposer(provider)

	comp, err := composer.Compose(context.Background(), "q", nil, scoredUnits(0.5))
	assert.NoError(t, err)
	assert.Equal(t, answer, comp.Answer)
}

func TestComposeDegradesOnTimeout(t *testing.T) {
	provider := &stubProvider{err: apperror.ErrModelTimeout}
	composer := newTestComposer(provider)

	comp, err := composer.Compose(context.Background(), "question", nil, scoredUnits(0.9))
	assert.NoError(t, err, "model failures must not surface as errors")
	assert.True(t, comp.Degraded)
	assert.Equal(t, constant.ErrorCodeModelTimeout, comp.ErrorCode)
	assert.Equal(t, constant.FallbackAnswerV1, comp.Answer)
	assert.Zero(t, comp.Confidence)
	assert.Empty(t, comp.Citations)
	assert.Equal(t, constant.CategoryGeneral, comp.Category)
}

func TestComposeDegradesOnRateLimit(t *testing.T) {
	provider := &stubProvider{err: apperror.ErrModelRateLimited}
	composer := newTestComposer(provider)

	comp, err := composer.Compose(context.Background(), "question", nil, scoredUnits(0.9))
	assert.NoError(t, err)
	assert.True(t, comp.Degraded)
	assert.Equal(t, constant.ErrorCodeModelRateLimited, comp.ErrorCode)
}

func TestComposeDegradesOnEmptyAnswer(t *testing.T) {
	provider := &stubProvider{answer: "   "}
	composer := newTestComposer(provider)

	comp, err := composer.Compose(context.Background(), "question", nil, scoredUnits(0.9))
	assert.NoError(t, err)
	assert.True(t, comp.Degraded)
	assert.Equal(t, constant.ErrorCodeModelUnavailable, comp.ErrorCode)
}

func TestComposeConfidenceNeverNegative(t *testing.T) {
	// Five dangling markers outweigh the top score.
	provider := &stubProvider{answer: "See [2] [3] [4] [5] [6]. Disclaimer: educational."}
	composer := newTestComposer(provider)

	comp, err := composer.Compose(context.Background(), "q", nil, scoredUnits(0.2))
	assert.NoError(t, err)
	assert.Zero(t, comp.Confidence)
}
