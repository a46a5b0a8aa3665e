package retrieval

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ai-legalaid-be/internal/entity"
	"ai-legalaid-be/internal/pkg/apperror"
	"ai-legalaid-be/pkg/corpus"
)

func loadedStore(t *testing.T) *corpus.Store {
	t.Helper()
	store := corpus.NewStore()
	if err := store.Load(corpus.SampleUnits()); err != nil {
		t.Fatalf("load sample corpus: %v", err)
	}
	return store
}

func TestRetrieveRequiresLoadedCorpus(t *testing.T) {
	r := NewLexicalRetriever(corpus.NewStore(), 0.05)

	_, err := r.Retrieve(context.Background(), "what is article 21", 5)
	assert.Error(t, err)
	assert.Equal(t, apperror.KindNotReady, apperror.KindOf(err))
}

func TestRetrieveIsDeterministic(t *testing.T) {
	r := NewLexicalRetriever(loadedStore(t), 0.05)

	first, err := r.Retrieve(context.Background(), "punishment for murder under ipc", 5)
	assert.NoError(t, err)
	assert.NotEmpty(t, first)

	for i := 0; i < 5; i++ {
		again, err := r.Retrieve(context.Background(), "punishment for murder under ipc", 5)
		assert.NoError(t, err)
		assert.Equal(t, len(first), len(again))
		for j := range first {
			assert.Equal(t, first[j].Unit.Id, again[j].Unit.Id)
			assert.Equal(t, first[j].Score, again[j].Score)
		}
	}
}

func TestRetrieveOrdersByScoreDescending(t *testing.T) {
	r := NewLexicalRetriever(loadedStore(t), 0.05)

	results, err := r.Retrieve(context.Background(), "fundamental rights equality constitution", 5)
	assert.NoError(t, err)
	assert.NotEmpty(t, results)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestRetrieveRespectsLimit(t *testing.T) {
	r := NewLexicalRetriever(loadedStore(t), 0.0)

	results, err := r.Retrieve(context.Background(), "law section act rights", 3)
	assert.NoError(t, err)
	assert.LessOrEqual(t, len(results), 3)
}

func TestRetrieveScoresAreNormalized(t *testing.T) {
	r := NewLexicalRetriever(loadedStore(t), 0.05)

	results, err := r.Retrieve(context.Background(), "right to equality article 14 constitution", 5)
	assert.NoError(t, err)
	for _, scored := range results {
		assert.GreaterOrEqual(t, scored.Score, 0.05)
		assert.LessOrEqual(t, scored.Score, 1.0)
	}
}

// The query shares no title tokens with "Right to Constitutional Remedies",
// so this exercises the body, keyword and category channels specifically.
func TestRetrieveFindsArticle32ForPILQuery(t *testing.T) {
	r := NewLexicalRetriever(loadedStore(t), 0.05)

	results, err := r.Retrieve(context.Background(), "How do I file a PIL in the Supreme Court?", 5)
	assert.NoError(t, err)
	assert.NotEmpty(t, results)
	assert.Equal(t, "Article 32", results[0].Unit.SectionLabel)
	assert.Greater(t, results[0].Score, 0.0)
}

// Stop words and one/two-letter tokens never score: a query made only of
// them matches nothing, and padding a query with them changes no ranking.
func TestRetrieveIgnoresStopWords(t *testing.T) {
	r := NewLexicalRetriever(loadedStore(t), 0.05)

	results, err := r.Retrieve(context.Background(), "what is the a an in on at to", 5)
	assert.NoError(t, err)
	assert.Empty(t, results)

	bare, err := r.Retrieve(context.Background(), "murder punishment", 5)
	assert.NoError(t, err)
	padded, err2 := r.Retrieve(context.Background(), "what is the punishment for murder", 5)
	assert.NoError(t, err2)

	assert.Equal(t, len(bare), len(padded))
	for i := range bare {
		assert.Equal(t, bare[i].Unit.Id, padded[i].Unit.Id)
		assert.Equal(t, bare[i].Score, padded[i].Score)
	}
}

// Scores below the threshold are dropped; a score exactly at the threshold
// survives.
func TestRetrieveFiltersBelowMinScore(t *testing.T) {
	store := corpus.NewStore()
	err := store.Load([]*entity.ReferenceUnit{
		{
			Id:       uuid.New(),
			Title:    "Completely unrelated provision",
			Body:     "Nothing in here matches.",
			Category: "criminal",
		},
	})
	assert.NoError(t, err)

	// A lone title hit normalizes to 10/20 = 0.5.
	results, err := NewLexicalRetriever(store, 0.75).Retrieve(context.Background(), "provision", 5)
	assert.NoError(t, err)
	assert.Empty(t, results)

	results, err = NewLexicalRetriever(store, 0.5).Retrieve(context.Background(), "provision", 5)
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 0.5, results[0].Score)
}

func TestRetrieveTieBreaksByUnitId(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	b := uuid.MustParse("00000000-0000-0000-0000-00000000000b")

	store := corpus.NewStore()
	// Loaded in reverse id order; identical content so scores tie.
	err := store.Load([]*entity.ReferenceUnit{
		{Id: b, Title: "Twin clause", Body: "identical text", Category: "civil"},
		{Id: a, Title: "Twin clause", Body: "identical text", Category: "civil"},
	})
	assert.NoError(t, err)

	r := NewLexicalRetriever(store, 0.0)
	results, err := r.Retrieve(context.Background(), "twin clause", 5)
	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, a, results[0].Unit.Id)
	assert.Equal(t, b, results[1].Unit.Id)
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"What is Article 21?", []string{"what", "is", "article", "21"}},
		{"IPC-302, murder", []string{"ipc", "302", "murder"}},
	}

	for _, tt := range tests {
		got := tokenize(tt.input)
		assert.Equal(t, tt.want, got, "tokenize(%q)", tt.input)
	}

	assert.Empty(t, tokenize(""))
}

func TestQueryTerms(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"What is Article 21?", []string{"article"}},
		{"How do I file a PIL in the Supreme Court?", []string{"file", "pil", "supreme", "court"}},
		{"what is the a an", nil},
	}

	for _, tt := range tests {
		got := queryTerms(tt.input)
		if tt.want == nil {
			assert.Empty(t, got, "queryTerms(%q)", tt.input)
		} else {
			assert.Equal(t, tt.want, got, "queryTerms(%q)", tt.input)
		}
	}
}
