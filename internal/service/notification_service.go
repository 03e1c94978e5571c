package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// NotificationService delivers best-effort side notifications.
type NotificationService struct {
	notificationRepo *repository.NotificationRepository
}

func NewNotificationService(notificationRepo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// TaskAssigned records an assignment notification for the task's assignee.
// A store failure is logged and swallowed: the task is already committed
// and is never rolled back because a notification could not be written.
func (s *NotificationService) TaskAssigned(ctx context.Context, task *model.Task) {
	notification := &model.Notification{
		ID:      uuid.New(),
		UserID:  task.AssigneeID,
		Type:    model.NotificationTaskAssigned,
		Title:   "New task assigned",
		Message: task.Title,
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		log.Printf("⚠️  Failed to create assignment notification for task %s: %v", task.ID, err)
	}
}

// ListForUser retrieves a user's notifications, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	return s.notificationRepo.GetByUser(ctx, userID)
}

// MarkRead sets is_read on a notification.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID uuid.UUID) error {
	return s.notificationRepo.MarkRead(ctx, notificationID)
}
