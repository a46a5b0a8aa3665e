package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ReferenceUnit struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title        string         `gorm:"type:varchar(300);not null"`
	Body         string         `gorm:"type:text;not null"`
	SourceLabel  string         `gorm:"type:varchar(200);not null;index"`
	SectionLabel string         `gorm:"type:varchar(100);not null"`
	Category     string         `gorm:"type:varchar(100);not null;index"`
	Keywords     datatypes.JSON `gorm:"type:jsonb"` // JSON array of lowercase keywords
	URL          string         `gorm:"type:varchar(500)"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
}

func (ReferenceUnit) TableName() string {
	return "reference_units"
}
