package dto

import "github.com/google/uuid"

type ReferenceUnitResponse struct {
	Id           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	SourceLabel  string    `json:"source_label"`
	SectionLabel string    `json:"section_label"`
	Category     string    `json:"category"`
	URL          string    `json:"url,omitempty"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	CorpusReady bool   `json:"corpus_ready"`
	CorpusUnits int    `json:"corpus_units"`
}
