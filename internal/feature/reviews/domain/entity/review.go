// Package entity defines the domain model for the reviews feature.
package entity

import authentity "cafe_backend/internal/feature/auth/domain/entity"

// Review is a user-authored free-text review. The table is migrated
// and holds rows written by the previous deployment, but no route
// serves it yet.
// TODO: surface reviews on the café detail page once one exists.
type Review struct {
	ID       uint            `gorm:"primaryKey"`
	AuthorID uint            `gorm:"index"`
	Author   authentity.User `gorm:"foreignKey:AuthorID"`
	Text     string          `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM.
func (Review) TableName() string {
	return "reviews"
}
