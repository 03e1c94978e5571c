package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// FeedbackService sends feedback on tasks and tracks its two view
// watermarks: is_read belongs to the recipient, last_viewed_at to the
// sender.
type FeedbackService struct {
	feedbackRepo *repository.FeedbackRepository
	taskRepo     *repository.TaskRepository
	now          func() time.Time
}

func NewFeedbackService(feedbackRepo *repository.FeedbackRepository, taskRepo *repository.TaskRepository) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		taskRepo:     taskRepo,
		now:          time.Now,
	}
}

// Send creates a feedback on a task, unread for the recipient.
func (s *FeedbackService) Send(ctx context.Context, taskID, senderID, recipientID uuid.UUID, message string) (*model.Feedback, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}
	if taskID == uuid.Nil || senderID == uuid.Nil || recipientID == uuid.Nil {
		return nil, fmt.Errorf("%w: task, sender and recipient are required", ErrValidation)
	}

	if _, err := s.taskRepo.GetByID(ctx, taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, fmt.Errorf("%w: task %s", ErrNotFound, taskID)
		}
		return nil, err
	}

	feedback := &model.Feedback{
		ID:          uuid.New(),
		TaskID:      taskID,
		SenderID:    senderID,
		RecipientID: recipientID,
		Message:     message,
		IsRead:      false,
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// MarkRead flips is_read for the recipient. Idempotent: a second call
// succeeds without further state change. Only the stored recipient may mark
// a feedback read.
func (s *FeedbackService) MarkRead(ctx context.Context, feedbackID, recipientID uuid.UUID) error {
	feedback, err := s.feedbackRepo.GetByID(ctx, feedbackID)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return fmt.Errorf("%w: feedback %s", ErrNotFound, feedbackID)
		}
		return err
	}
	if feedback.RecipientID != recipientID {
		return fmt.Errorf("%w: only the recipient may mark feedback read", ErrPermission)
	}
	if feedback.IsRead {
		return nil
	}
	return s.feedbackRepo.MarkRead(ctx, feedbackID)
}

// MarkViewed stamps the sender watermark on the given feedbacks. It only
// silences unseen-reply indicators and never touches is_read.
func (s *FeedbackService) MarkViewed(ctx context.Context, feedbackIDs []uuid.UUID, senderID uuid.UUID) error {
	if len(feedbackIDs) == 0 {
		return nil
	}
	return s.feedbackRepo.MarkViewed(ctx, feedbackIDs, senderID, s.now())
}

// ListUnread returns unread feedbacks for a recipient, newest first. A
// non-positive limit returns the full list.
func (s *FeedbackService) ListUnread(ctx context.Context, recipientID uuid.UUID, limit int) ([]model.Feedback, error) {
	return s.feedbackRepo.GetUnreadByRecipient(ctx, recipientID, limit)
}
