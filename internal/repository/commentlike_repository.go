package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard/internal/model"
)

type CommentLikeRepository struct {
	db *gorm.DB
}

func NewCommentLikeRepository(db *gorm.DB) *CommentLikeRepository {
	return &CommentLikeRepository{db: db}
}

// Toggle removes the like for the (comment, user) pair if it exists,
// otherwise inserts it. The insert relies on the composite primary key and
// ON CONFLICT DO NOTHING, so two concurrent toggles can never leave two
// rows. Returns whether the comment is liked after the call.
func (r *CommentLikeRepository) Toggle(ctx context.Context, commentID, userID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&model.CommentLike{})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return false, nil
	}

	err := r.db.WithContext(ctx).Exec(
		"INSERT INTO comment_likes (comment_id, user_id, created_at) VALUES (?, ?, NOW()) ON CONFLICT DO NOTHING",
		commentID, userID,
	).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

// CountByComment returns the number of likes on a comment
func (r *CommentLikeRepository) CountByComment(ctx context.Context, commentID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
