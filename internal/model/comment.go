package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment is immutable after creation; only its like count changes.
type Comment struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	FeedbackID uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null"`
	Content    string    `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`

	Feedback Feedback `gorm:"foreignKey:FeedbackID"`
	Author   User     `gorm:"foreignKey:AuthorID"`
}
