package model

import (
	"time"

	"github.com/google/uuid"
)

// Feedback несет два независимых признака просмотра: is_read ставит
// получатель, last_viewed_at — отметка отправителя для подсчета
// непросмотренных ответов.
type Feedback struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TaskID       uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipientID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Message      string    `gorm:"not null"`
	IsRead       bool      `gorm:"not null;default:false"`
	LastViewedAt *time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`

	Task      Task `gorm:"foreignKey:TaskID"`
	Sender    User `gorm:"foreignKey:SenderID"`
	Recipient User `gorm:"foreignKey:RecipientID"`
}
