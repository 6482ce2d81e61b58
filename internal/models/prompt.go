package models

import (
	"time"
)

// Prompt is the original text request submitted for content generation.
// PromptText carries a unique index so concurrent generate requests with
// identical text resolve to a single row via the repository upsert.
type Prompt struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PromptText  string    `gorm:"uniqueIndex;not null" json:"prompt_text"`
	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`

	GeneratedContents []GeneratedContent `gorm:"foreignKey:PromptID;constraint:OnDelete:CASCADE" json:"generated_contents,omitempty"`
}
