package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username     string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	FullName     string     `gorm:"type:varchar(200)"`
	Role         string     `gorm:"type:varchar(20);not null;default:'user'"`
	Status       string     `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	LastLoginAt  *time.Time `gorm:"type:timestamptz"`
}

func (User) TableName() string {
	return "users"
}
