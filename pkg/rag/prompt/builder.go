package prompt

import (
	"fmt"
	"strings"

	"ai-legalaid-be/internal/constant"
	"ai-legalaid-be/pkg/llm"
	"ai-legalaid-be/pkg/rag/retrieval"
)

// Builder assembles the generation prompt: mandatory instructions, numbered
// legal excerpts, a bounded conversation window and the current question.
type Builder struct {
	units   []retrieval.ScoredUnit
	history []llm.Message
	query   string
	budget  int // total character budget
}

func NewBuilder(units []retrieval.ScoredUnit, history []llm.Message, query string, budget int) *Builder {
	return &Builder{
		units:   units,
		history: history,
		query:   query,
		budget:  budget,
	}
}

// Build renders the prompt. When the character budget is exceeded the oldest
// history turns are dropped first; the instruction block, the excerpts and
// the current question always survive.
func (b *Builder) Build() string {
	var prompt strings.Builder

	b.writeInstructions(&prompt)
	b.writeExcerpts(&prompt)
	b.writeHistory(&prompt)
	b.writeUserQuestion(&prompt)

	return prompt.String()
}

func (b *Builder) writeInstructions(prompt *strings.Builder) {
	prompt.WriteString("<instructions>\n")
	prompt.WriteString(constant.SystemPromptV1)
	prompt.WriteString("\n</instructions>\n\n")
}

func (b *Builder) writeExcerpts(prompt *strings.Builder) {
	if len(b.units) == 0 {
		prompt.WriteString("<note>\n")
		prompt.WriteString(constant.NoSourcesPreambleV1)
		prompt.WriteString("\n</note>\n\n")
		return
	}

	prompt.WriteString("<legal_excerpts>\n")
	for i, scored := range b.units {
		u := scored.Unit
		prompt.WriteString(fmt.Sprintf("[%d] %s (%s, %s)\n", i+1, u.Title, u.SourceLabel, u.SectionLabel))
		prompt.WriteString(u.Body)
		prompt.WriteString("\n\n")
	}
	prompt.WriteString("</legal_excerpts>\n\n")
}

func (b *Builder) writeHistory(prompt *strings.Builder) {
	kept := b.trimHistory()
	if len(kept) == 0 {
		return
	}

	prompt.WriteString("<conversation>\n")
	for _, msg := range kept {
		role := "User"
		if msg.Role == constant.ChatMessageRoleModel {
			role = "Assistant"
		}
		prompt.WriteString(fmt.Sprintf("%s: %s\n", role, msg.Content))
	}
	prompt.WriteString("</conversation>\n\n")
}

// trimHistory keeps the most recent turns that fit in what remains of the
// budget after the fixed blocks, returned in chronological order. A turn is
// a user message plus the model replies that follow it; a reply never
// survives without its question.
func (b *Builder) trimHistory() []llm.Message {
	if len(b.history) == 0 {
		return nil
	}

	fixed := len(constant.SystemPromptV1) + len(b.query)
	for _, scored := range b.units {
		fixed += len(scored.Unit.Title) + len(scored.Unit.Body)
	}

	remaining := b.budget - fixed
	if remaining <= 0 {
		return nil
	}

	start := len(b.history)
	used := 0
	for end := len(b.history); end > 0; end = start {
		begin := end - 1
		for begin > 0 && b.history[begin].Role == constant.ChatMessageRoleModel {
			begin--
		}

		cost := 0
		for i := begin; i < end; i++ {
			cost += len(b.history[i].Content)
		}
		if used+cost > remaining {
			break
		}
		used += cost
		start = begin
	}

	return b.history[start:]
}

func (b *Builder) writeUserQuestion(prompt *strings.Builder) {
	prompt.WriteString("<user_question>\n")
	prompt.WriteString(b.query)
	prompt.WriteString("\n</user_question>\n\n")
	prompt.WriteString("Now answer the question following the instructions above:")
}
