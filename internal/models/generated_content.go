package models

import (
	"time"
)

// GeneratedContent is text produced by the upstream model for a Prompt,
// authored by a User. It owns zero or more Reviews.
type GeneratedContent struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PromptID    uint      `gorm:"not null" json:"prompt_id"`
	UserID      uint      `gorm:"not null" json:"user_id"`
	ContentText string    `gorm:"not null" json:"content_text"`
	GeneratedAt time.Time `gorm:"autoCreateTime" json:"generated_at"`

	Prompt  *Prompt  `gorm:"foreignKey:PromptID;constraint:OnDelete:CASCADE" json:"prompt,omitempty"`
	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Reviews []Review `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}
