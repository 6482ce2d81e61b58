package models

import (
	"time"
)

// Review is a correction/comment attached to a GeneratedContent item by a
// reviewing User. Reviews are append-only: they are never mutated or deleted
// except via cascade from their content or reviewer.
type Review struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ContentID      uint      `gorm:"not null" json:"content_id"`
	ReviewerID     uint      `gorm:"not null" json:"reviewer_id"`
	UpdatedContent string    `gorm:"not null" json:"updated_content"`
	Comment        *string   `json:"comment"`
	ReviewedAt     time.Time `gorm:"autoCreateTime" json:"reviewed_at"`

	Content  *GeneratedContent `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE" json:"content,omitempty"`
	Reviewer *User             `gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE" json:"reviewer,omitempty"`
}
