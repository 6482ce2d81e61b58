// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents an account that authors generated content and/or reviews it.
// Identity is keyed by email: lookup-or-create paths must never produce two
// rows sharing an email.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`

	GeneratedContents []GeneratedContent `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"generated_contents,omitempty"`
	Reviews           []Review           `gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}
