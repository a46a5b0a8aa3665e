package prompt

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ai-legalaid-be/internal/constant"
	"ai-legalaid-be/internal/entity"
	"ai-legalaid-be/pkg/llm"
	"ai-legalaid-be/pkg/rag/retrieval"
)

func someUnits() []retrieval.ScoredUnit {
	return []retrieval.ScoredUnit{
		{
			Unit: &entity.ReferenceUnit{
				Id:           uuid.New(),
				Title:        "Right to Equality",
				Body:         "The State shall not deny to any person equality before the law.",
				SourceLabel:  "Constitution of India",
				SectionLabel: "Article 14",
			},
			Score: 0.8,
		},
		{
			Unit: &entity.ReferenceUnit{
				Id:           uuid.New(),
				Title:        "Punishment for murder",
				Body:         "Whoever commits murder shall be punished with death or imprisonment for life.",
				SourceLabel:  "Indian Penal Code 1860",
				SectionLabel: "Section 302",
			},
			Score: 0.6,
		},
	}
}

func TestBuildContainsAllBlocks(t *testing.T) {
	history := []llm.Message{
		{Role: constant.ChatMessageRoleUser, Content: "What is Article 14?"},
		{Role: constant.ChatMessageRoleModel, Content: "Article 14 guarantees equality."},
	}

	prompt := NewBuilder(someUnits(), history, "Does it apply to foreigners?", 12000).Build()

	assert.Contains(t, prompt, constant.SystemPromptV1)
	assert.Contains(t, prompt, "[1] Right to Equality (Constitution of India, Article 14)")
	assert.Contains(t, prompt, "[2] Punishment for murder (Indian Penal Code 1860, Section 302)")
	assert.Contains(t, prompt, "User: What is Article 14?")
	assert.Contains(t, prompt, "Assistant: Article 14 guarantees equality.")
	assert.Contains(t, prompt, "Does it apply to foreigners?")

	// Instructions come before excerpts, excerpts before the question.
	assert.Less(t, strings.Index(prompt, "<instructions>"), strings.Index(prompt, "<legal_excerpts>"))
	assert.Less(t, strings.Index(prompt, "<legal_excerpts>"), strings.Index(prompt, "<user_question>"))
}

func TestBuildEmptyRetrievalUsesPreamble(t *testing.T) {
	prompt := NewBuilder(nil, nil, "What is the weather?", 12000).Build()

	assert.Contains(t, prompt, constant.NoSourcesPreambleV1)
	assert.NotContains(t, prompt, "<legal_excerpts>")
}

func TestBuildDropsOldestHistoryFirst(t *testing.T) {
	history := []llm.Message{
		{Role: constant.ChatMessageRoleUser, Content: strings.Repeat("old question ", 100)},
		{Role: constant.ChatMessageRoleModel, Content: "old answer"},
		{Role: constant.ChatMessageRoleUser, Content: "recent question"},
		{Role: constant.ChatMessageRoleModel, Content: "recent answer"},
	}

	units := someUnits()
	fixed := len(constant.SystemPromptV1) + len("current query")
	for _, scored := range units {
		fixed += len(scored.Unit.Title) + len(scored.Unit.Body)
	}
	// Budget leaves room for the most recent turn only.
	budget := fixed + len("recent question") + len("recent answer") + 5

	prompt := NewBuilder(units, history, "current query", budget).Build()

	assert.NotContains(t, prompt, "old question")
	assert.NotContains(t, prompt, "old answer")
	assert.Contains(t, prompt, "recent question")
	assert.Contains(t, prompt, "recent answer")
}

// Trimming works in whole turns: when the budget fits a model reply but not
// the question it answers, both go.
func TestBuildNeverKeepsOrphanedModelReply(t *testing.T) {
	history := []llm.Message{
		{Role: constant.ChatMessageRoleUser, Content: strings.Repeat("long first question ", 50)},
		{Role: constant.ChatMessageRoleModel, Content: "short first answer"},
		{Role: constant.ChatMessageRoleUser, Content: "second question"},
		{Role: constant.ChatMessageRoleModel, Content: "second answer"},
	}

	fixed := len(constant.SystemPromptV1) + len("query")
	// Room for the second turn plus the first answer, but not the first
	// question: the first turn must be dropped whole.
	budget := fixed + len("second question") + len("second answer") + len("short first answer") + 5

	prompt := NewBuilder(nil, history, "query", budget).Build()

	assert.NotContains(t, prompt, "long first question")
	assert.NotContains(t, prompt, "short first answer")
	assert.Contains(t, prompt, "second question")
	assert.Contains(t, prompt, "second answer")
}

func TestBuildMandatoryBlocksSurviveTinyBudget(t *testing.T) {
	history := []llm.Message{
		{Role: constant.ChatMessageRoleUser, Content: "some history"},
	}

	prompt := NewBuilder(someUnits(), history, "the question", 10).Build()

	assert.Contains(t, prompt, constant.SystemPromptV1)
	assert.Contains(t, prompt, "the question")
	assert.NotContains(t, prompt, "some history")
}

func TestBuildKeptHistoryStaysChronological(t *testing.T) {
	history := []llm.Message{
		{Role: constant.ChatMessageRoleUser, Content: "first question"},
		{Role: constant.ChatMessageRoleModel, Content: "first answer"},
		{Role: constant.ChatMessageRoleUser, Content: "second question"},
	}

	prompt := NewBuilder(nil, history, "third question", 12000).Build()

	assert.Less(t, strings.Index(prompt, "first question"), strings.Index(prompt, "first answer"))
	assert.Less(t, strings.Index(prompt, "first answer"), strings.Index(prompt, "second question"))
}
