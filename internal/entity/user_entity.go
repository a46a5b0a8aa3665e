package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string
type UserStatus string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	Id           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	FullName     string
	Role         UserRole
	Status       UserStatus
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}
