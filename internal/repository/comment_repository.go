package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard/internal/model"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create adds a new comment to the database
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// GetByID retrieves a comment by its ID
func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	var comment model.Comment
	result := r.db.WithContext(ctx).First(&comment, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, result.Error
	}
	return &comment, nil
}

// GetByFeedbackID retrieves all comments on a feedback, oldest first
func (r *CommentRepository) GetByFeedbackID(ctx context.Context, feedbackID uuid.UUID) ([]model.Comment, error) {
	var comments []model.Comment
	result := r.db.WithContext(ctx).Where("feedback_id = ?", feedbackID).Order("created_at").Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}

// GetByFeedbackIDs retrieves all comments on any of the given feedbacks
func (r *CommentRepository) GetByFeedbackIDs(ctx context.Context, feedbackIDs []uuid.UUID) ([]model.Comment, error) {
	var comments []model.Comment
	result := r.db.WithContext(ctx).Where("feedback_id IN ?", feedbackIDs).Order("created_at").Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}
