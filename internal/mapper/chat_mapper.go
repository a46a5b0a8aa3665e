package mapper

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"ai-legalaid-be/internal/entity"
	"ai-legalaid-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		State:     s.State,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		State:     s.State,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

// Exchange Mappers

func (m *ChatMapper) ExchangeToEntity(e *model.Exchange) *entity.Exchange {
	if e == nil {
		return nil
	}

	var sources []entity.SourceSnapshot
	if len(e.Sources) > 0 {
		// A corrupt snapshot column degrades to a source-less history entry.
		_ = json.Unmarshal(e.Sources, &sources)
	}

	return &entity.Exchange{
		Id:            e.Id,
		ChatSessionId: e.ChatSessionId,
		UserId:        e.UserId,
		QueryText:     e.QueryText,
		AnswerText:    e.AnswerText,
		Category:      e.Category,
		Confidence:    e.Confidence,
		Degraded:      e.Degraded,
		ErrorCode:     e.ErrorCode,
		ModelUsed:     e.ModelUsed,
		ResponseTime:  time.Duration(e.ResponseTimeMs) * time.Millisecond,
		Sources:       sources,
		CreatedAt:     e.CreatedAt,
		UserRating:    e.UserRating,
	}
}

func (m *ChatMapper) ExchangeToModel(e *entity.Exchange) *model.Exchange {
	if e == nil {
		return nil
	}

	var sources datatypes.JSON
	if len(e.Sources) > 0 {
		raw, err := json.Marshal(e.Sources)
		if err == nil {
			sources = raw
		}
	}

	return &model.Exchange{
		Id:             e.Id,
		ChatSessionId:  e.ChatSessionId,
		UserId:         e.UserId,
		QueryText:      e.QueryText,
		AnswerText:     e.AnswerText,
		Category:       e.Category,
		Confidence:     e.Confidence,
		Degraded:       e.Degraded,
		ErrorCode:      e.ErrorCode,
		ModelUsed:      e.ModelUsed,
		ResponseTimeMs: e.ResponseTime.Milliseconds(),
		Sources:        sources,
		UserRating:     e.UserRating,
		CreatedAt:      e.CreatedAt,
	}
}

func (m *ChatMapper) CitationToEntity(c *model.ExchangeCitation) *entity.ExchangeCitation {
	if c == nil {
		return nil
	}

	return &entity.ExchangeCitation{
		Id:              c.Id,
		ExchangeId:      c.ExchangeId,
		ReferenceUnitId: c.ReferenceUnitId,
		Score:           c.Score,
		Rank:            c.Rank,
		CreatedAt:       c.CreatedAt,
	}
}

func (m *ChatMapper) CitationToModel(c *entity.ExchangeCitation) *model.ExchangeCitation {
	if c == nil {
		return nil
	}

	return &model.ExchangeCitation{
		Id:              c.Id,
		ExchangeId:      c.ExchangeId,
		ReferenceUnitId: c.ReferenceUnitId,
		Score:           c.Score,
		Rank:            c.Rank,
		CreatedAt:       c.CreatedAt,
	}
}

func (m *ChatMapper) FeedbackToModel(f *entity.ExchangeFeedback) *model.ExchangeFeedback {
	if f == nil {
		return nil
	}

	return &model.ExchangeFeedback{
		Id:         f.Id,
		ExchangeId: f.ExchangeId,
		UserId:     f.UserId,
		Rating:     f.Rating,
		Comment:    f.Comment,
		IsHelpful:  f.IsHelpful,
		CreatedAt:  f.CreatedAt,
	}
}
