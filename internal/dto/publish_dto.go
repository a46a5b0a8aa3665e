package dto

import "github.com/google/uuid"

// PublishEmbedUnitMessage is the payload queued for the embedding consumer
// after a reference unit is created or reloaded.
type PublishEmbedUnitMessage struct {
	ReferenceUnitId uuid.UUID `json:"reference_unit_id"`
}
