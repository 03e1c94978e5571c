package model

import (
	"time"

	"github.com/google/uuid"
)

// CommentLike is an existence-only record. The composite primary key keeps
// the (comment, user) pair unique at the store level even under concurrent
// toggles.
type CommentLike struct {
	CommentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Comment Comment `gorm:"foreignKey:CommentID"`
	User    User    `gorm:"foreignKey:UserID"`
}
