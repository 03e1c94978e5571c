package model

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title       string    `gorm:"not null"`
	Description string
	AssigneeID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Status      string    `gorm:"not null;check:status IN ('todo', 'in_progress', 'completed')"`
	Progress    int       `gorm:"not null;default:0"`
	Deadline    time.Time `gorm:"not null"`
	Urgency     string    `gorm:"not null"`
	Memo        string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Assignee User `gorm:"foreignKey:AssigneeID"`
}

// Статусы задачи. Переходы между статусами не ограничены: задача может
// вернуться из completed обратно в todo.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Уровни срочности, выводимые из срока выполнения
const (
	UrgencyGreen  = "green"
	UrgencyYellow = "yellow"
	UrgencyRed    = "red"
)

// DaysRemaining returns the number of calendar days between now and the
// deadline. Both values are truncated to midnight first, so a deadline of
// today yields 0 and an overdue deadline yields a negative count.
func DaysRemaining(deadline, now time.Time) int {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	y, m, d = deadline.Date()
	due := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return int(due.Sub(today).Hours() / 24)
}

// UrgencyFor derives the urgency level from the deadline: red when 3 days
// or fewer remain (including overdue), yellow for 4 to 7 days, green
// otherwise.
func UrgencyFor(deadline, now time.Time) string {
	days := DaysRemaining(deadline, now)
	switch {
	case days <= 3:
		return UrgencyRed
	case days <= 7:
		return UrgencyYellow
	default:
		return UrgencyGreen
	}
}
