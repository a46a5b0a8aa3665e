package retrieval

import (
	"context"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"ai-legalaid-be/internal/entity"
	"ai-legalaid-be/internal/pkg/apperror"
	"ai-legalaid-be/pkg/corpus"
)

// Scoring weights. Raw scores are normalized by dividing by 20 and capping
// at 1.0, so a title hit plus a couple of keyword hits already counts as
// fully relevant.
const (
	weightTitleHit      = 10
	weightContentTerm   = 2
	weightKeywordHit    = 5
	weightSectionHit    = 3
	weightCategoryMatch = 8
	weightCategoryOther = 2

	rawNormalizer = 20.0
)

// stopWords are high-frequency query words that carry no legal signal and
// would otherwise match nearly every unit.
var stopWords = map[string]struct{}{
	"the": {}, "is": {}, "are": {}, "was": {}, "were": {}, "a": {}, "an": {},
	"and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {}, "to": {},
	"for": {}, "of": {}, "with": {}, "by": {}, "what": {}, "how": {},
	"when": {}, "where": {}, "why": {}, "who": {},
}

// legalTerms maps a category key to terms that signal it in a query. A hit
// boosts units of the matching category strongly and every other unit weakly.
var legalTerms = map[string][]string{
	"constitutional": {"constitution", "fundamental rights", "directive principles", "amendment", "article", "writ", "pil"},
	"criminal":       {"ipc", "penal code", "crime", "offense", "punishment", "section", "murder", "theft"},
	"civil":          {"contract", "tort", "property", "civil procedure", "damages", "breach"},
	"corporate":      {"company", "director", "shareholder", "corporate governance", "compliance"},
	"consumer":       {"consumer protection", "consumer rights", "unfair trade", "defective goods"},
	"family":         {"marriage", "divorce", "custody", "maintenance", "succession"},
	"labour":         {"employment", "worker", "industrial dispute", "minimum wages", "provident fund"},
	"tax":            {"income tax", "gst", "tax evasion", "assessment", "penalty"},
}

// LexicalRetriever scores units with a deterministic term-overlap function of
// the query and the corpus snapshot. Same query, same corpus, same result.
type LexicalRetriever struct {
	store    *corpus.Store
	minScore float64
}

var _ Retriever = &LexicalRetriever{}

func NewLexicalRetriever(store *corpus.Store, minScore float64) *LexicalRetriever {
	return &LexicalRetriever{
		store:    store,
		minScore: minScore,
	}
}

func (r *LexicalRetriever) Retrieve(ctx context.Context, query string, limit int) ([]ScoredUnit, error) {
	if !r.store.Ready() {
		return nil, apperror.NotReady("reference corpus not loaded")
	}
	if limit <= 0 {
		limit = 5
	}

	queryLower := strings.ToLower(query)
	terms := queryTerms(query)

	results := make([]ScoredUnit, 0)
	for _, unit := range r.store.All() {
		raw := scoreUnit(unit, queryLower, terms)
		if raw <= 0 {
			continue
		}
		score := float64(raw) / rawNormalizer
		if score > 1.0 {
			score = 1.0
		}
		if score < r.minScore {
			continue
		}
		results = append(results, ScoredUnit{
			Unit:  unit,
			Raw:   float64(raw),
			Score: score,
		})
	}

	// Order by score descending; equal scores break ties by unit id
	// ascending so retrieval stays deterministic.
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Unit.Id.String() < results[j].Unit.Id.String()
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// scoreUnit matches filtered query terms against whole tokens of the unit
// text. Substring matching is reserved for the keyword and category phrase
// channels, where the phrases are long enough not to misfire.
func scoreUnit(unit *entity.ReferenceUnit, queryLower string, terms []string) int {
	score := 0

	titleTokens := tokenSet(unit.Title)
	bodyTokens := tokenSet(unit.Body)
	sectionTokens := tokenSet(unit.SectionLabel)
	categoryLower := strings.ToLower(unit.Category)

	for _, term := range terms {
		if _, ok := titleTokens[term]; ok {
			score += weightTitleHit
			break
		}
	}

	for _, term := range terms {
		if _, ok := bodyTokens[term]; ok {
			score += weightContentTerm
		}
	}

	for _, keyword := range unit.Keywords {
		if strings.Contains(queryLower, strings.ToLower(keyword)) {
			score += weightKeywordHit
		}
	}

	for _, term := range terms {
		if _, ok := sectionTokens[term]; ok {
			score += weightSectionHit
			break
		}
	}

	for category, categoryTerms := range legalTerms {
		hit := false
		for _, term := range categoryTerms {
			if strings.Contains(queryLower, term) {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}
		if strings.Contains(categoryLower, category) {
			score += weightCategoryMatch
		} else {
			score += weightCategoryOther
		}
	}

	return score
}

// tokenize case-folds the query and splits it on anything that is not a
// letter or digit.
func tokenize(query string) []string {
	return strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// queryTerms tokenizes the query and drops stop words and tokens shorter
// than three runes before scoring.
func queryTerms(query string) []string {
	tokens := tokenize(query)
	terms := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, stop := stopWords[token]; stop {
			continue
		}
		if utf8.RuneCountInString(token) < 3 {
			continue
		}
		terms = append(terms, token)
	}
	return terms
}

func tokenSet(text string) map[string]struct{} {
	tokens := tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}
