package specification

import "gorm.io/gorm"

type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

type BySourceLabel struct {
	SourceLabel string
}

func (s BySourceLabel) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source_label = ?", s.SourceLabel)
}
