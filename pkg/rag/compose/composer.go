package compose

import (
	"context"
	"strings"
	"time"

	"ai-legalaid-be/internal/constant"
	"ai-legalaid-be/internal/entity"
	"ai-legalaid-be/internal/pkg/apperror"
	"ai-legalaid-be/internal/pkg/logger"
	"ai-legalaid-be/pkg/llm"
	"ai-legalaid-be/pkg/rag/prompt"
	"ai-legalaid-be/pkg/rag/retrieval"
)

// Citation is one reference the answer actually cites, carrying the
// retrieval score assigned when the unit was selected.
type Citation struct {
	Unit  *entity.ReferenceUnit
	Score float64
	Rank  int
}

// Composition is the outcome of one generation attempt. Degraded
// compositions are first-class results, not errors: the pipeline persists
// them like any other exchange.
type Composition struct {
	Answer     string
	Confidence float64
	Category   string
	Citations  []Citation
	Degraded   bool
	ErrorCode  string
	ModelUsed  string
}

const emptyRetrievalConfidence = 0.2

type Config struct {
	PromptBudget    int
	CitationPenalty float64
	GenerateTimeout time.Duration
}

type Composer struct {
	provider llm.LLMProvider
	cfg      Config
	log      logger.ILogger
}

func NewComposer(provider llm.LLMProvider, cfg Config, log logger.ILogger) *Composer {
	if cfg.PromptBudget <= 0 {
		cfg.PromptBudget = 12000
	}
	if cfg.CitationPenalty <= 0 {
		cfg.CitationPenalty = 0.1
	}
	if cfg.GenerateTimeout <= 0 {
		cfg.GenerateTimeout = 45 * time.Second
	}
	return &Composer{
		provider: provider,
		cfg:      cfg,
		log:      log,
	}
}

// Compose builds the prompt, runs generation and applies the citation guard.
// Model failures never escape as errors; they produce a degraded
// composition instead.
func (c *Composer) Compose(ctx context.Context, query string, history []llm.Message, retrieved []retrieval.ScoredUnit) (*Composition, error) {
	promptText := prompt.NewBuilder(retrieved, history, query, c.cfg.PromptBudget).Build()

	genCtx, cancel := context.WithTimeout(ctx, c.cfg.GenerateTimeout)
	defer cancel()

	answer, err := c.provider.Generate(genCtx, promptText)
	if err != nil {
		return c.degrade(query, err), nil
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return c.degrade(query, apperror.ErrModelUnavailable), nil
	}

	markers, dropped := extractMarkers(answer, len(retrieved))

	citations := make([]Citation, 0, len(markers))
	for rank, marker := range markers {
		scored := retrieved[marker-1]
		citations = append(citations, Citation{
			Unit:  scored.Unit,
			Score: scored.Score,
			Rank:  rank + 1,
		})
	}

	confidence := emptyRetrievalConfidence
	if len(retrieved) > 0 {
		confidence = retrieved[0].Score
	}
	confidence -= float64(dropped) * c.cfg.CitationPenalty
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	if dropped > 0 {
		c.log.Warn("compose", "model cited out-of-range excerpts", map[string]interface{}{
			"dropped": dropped,
		})
	}

	if !strings.Contains(strings.ToLower(answer), "disclaimer") {
		answer += constant.DisclaimerV1
	}

	return &Composition{
		Answer:     answer,
		Confidence: confidence,
		Category:   Classify(query + " " + answer),
		Citations:  citations,
		ModelUsed:  c.provider.Name(),
	}, nil
}

// degrade absorbs a generation failure into a fixed apology answer.
func (c *Composer) degrade(query string, err error) *Composition {
	errorCode := constant.ErrorCodeModelUnavailable
	switch apperror.KindOf(err) {
	case apperror.KindModelTimeout:
		errorCode = constant.ErrorCodeModelTimeout
	case apperror.KindModelRateLimited:
		errorCode = constant.ErrorCodeModelRateLimited
	}

	c.log.Error("compose", "generation failed, returning degraded answer", map[string]interface{}{
		"error":      err.Error(),
		"error_code": errorCode,
	})

	return &Composition{
		Answer:     constant.FallbackAnswerV1,
		Confidence: 0,
		Category:   constant.CategoryGeneral,
		Degraded:   true,
		ErrorCode:  errorCode,
		ModelUsed:  c.provider.Name(),
	}
}
