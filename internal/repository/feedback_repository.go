package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard/internal/model"
)

var (
	ErrFeedbackNotFound = errors.New("feedback not found")
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create adds a new feedback to the database
func (r *FeedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

// GetByID retrieves a feedback by its ID
func (r *FeedbackRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Feedback, error) {
	var feedback model.Feedback
	result := r.db.WithContext(ctx).First(&feedback, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, result.Error
	}
	return &feedback, nil
}

// GetUnreadByRecipient retrieves unread feedbacks for a recipient, newest
// first. A non-positive limit returns the full list.
func (r *FeedbackRepository) GetUnreadByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	query := r.db.WithContext(ctx).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Find(&feedbacks)
	if result.Error != nil {
		return nil, result.Error
	}
	return feedbacks, nil
}

// GetBySender retrieves all feedbacks authored by a sender
func (r *FeedbackRepository) GetBySender(ctx context.Context, senderID uuid.UUID) ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	result := r.db.WithContext(ctx).Where("sender_id = ?", senderID).Find(&feedbacks)
	if result.Error != nil {
		return nil, result.Error
	}
	return feedbacks, nil
}

// MarkRead sets is_read on a feedback. Repeated calls leave the row as is.
func (r *FeedbackRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Feedback{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

// MarkViewed stamps last_viewed_at on the given feedbacks, scoped to the
// sender so one user cannot move another sender's watermark.
func (r *FeedbackRepository) MarkViewed(ctx context.Context, ids []uuid.UUID, senderID uuid.UUID, viewedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Feedback{}).
		Where("id IN ? AND sender_id = ?", ids, senderID).
		Update("last_viewed_at", viewedAt).Error
}

// DeleteByTaskIDs removes all feedbacks attached to the given tasks
func (r *FeedbackRepository) DeleteByTaskIDs(ctx context.Context, taskIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Where("task_id IN ?", taskIDs).Delete(&model.Feedback{}).Error
}
