package retrieval

import (
	"context"

	"ai-legalaid-be/internal/pkg/apperror"
	"ai-legalaid-be/internal/pkg/logger"
	"ai-legalaid-be/internal/repository/unitofwork"
	"ai-legalaid-be/pkg/corpus"
	"ai-legalaid-be/pkg/embedding"
)

// VectorRetriever ranks units by pgvector cosine similarity over the
// unit_embeddings table. Embeddings are produced asynchronously by the
// embedding consumer, so any gap (no vectors yet, embedder down) falls back
// to the lexical retriever instead of failing the query.
type VectorRetriever struct {
	store      *corpus.Store
	embedder   embedding.EmbeddingProvider
	uowFactory unitofwork.RepositoryFactory
	fallback   Retriever
	minScore   float64
	log        logger.ILogger
}

var _ Retriever = &VectorRetriever{}

func NewVectorRetriever(
	store *corpus.Store,
	embedder embedding.EmbeddingProvider,
	uowFactory unitofwork.RepositoryFactory,
	fallback Retriever,
	minScore float64,
	log logger.ILogger,
) *VectorRetriever {
	return &VectorRetriever{
		store:      store,
		embedder:   embedder,
		uowFactory: uowFactory,
		fallback:   fallback,
		minScore:   minScore,
		log:        log,
	}
}

func (r *VectorRetriever) Retrieve(ctx context.Context, query string, limit int) ([]ScoredUnit, error) {
	if !r.store.Ready() {
		return nil, apperror.NotReady("reference corpus not loaded")
	}
	if limit <= 0 {
		limit = 5
	}

	embedRes, err := r.embedder.Generate(query, embedding.TaskTypeQuery)
	if err != nil {
		r.log.Warn("retrieval", "query embedding failed, falling back to lexical", map[string]interface{}{
			"error": err.Error(),
		})
		return r.fallback.Retrieve(ctx, query, limit)
	}

	uow := r.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.UnitEmbeddingRepository().SearchSimilarWithScore(ctx, embedRes.Embedding.Values, limit, r.minScore)
	if err != nil {
		r.log.Warn("retrieval", "vector search failed, falling back to lexical", map[string]interface{}{
			"error": err.Error(),
		})
		return r.fallback.Retrieve(ctx, query, limit)
	}
	if len(scored) == 0 {
		return r.fallback.Retrieve(ctx, query, limit)
	}

	results := make([]ScoredUnit, 0, len(scored))
	for _, s := range scored {
		unit, ok := r.store.Lookup(s.Embedding.ReferenceUnitId)
		if !ok {
			// Embedding row for a unit the corpus no longer carries.
			continue
		}
		score := s.Similarity
		if score > 1.0 {
			score = 1.0
		}
		if score < 0 {
			score = 0
		}
		results = append(results, ScoredUnit{
			Unit:  unit,
			Raw:   s.Similarity,
			Score: score,
		})
	}

	if len(results) == 0 {
		return r.fallback.Retrieve(ctx, query, limit)
	}
	return results, nil
}
