package model

import (
	"time"

	"github.com/google/uuid"
)

// SystemAnalytic is a named usage counter (total_users, total_sessions,
// total_queries).
type SystemAnalytic struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MetricName  string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	MetricValue int64     `gorm:"not null;default:0"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (SystemAnalytic) TableName() string {
	return "system_analytics"
}
