package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type ByUsername struct {
	Username string
}

func (s ByUsername) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("username = ?", s.Username)
}

// ByEmailOrUsername matches either identity column, used at registration to
// reject duplicates in one query.
type ByEmailOrUsername struct {
	Email    string
	Username string
}

func (s ByEmailOrUsername) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ? OR username = ?", s.Email, s.Username)
}

type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}
