package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// CommentService appends threaded replies to feedback and computes which
// tasks carry replies the sender has not seen yet.
type CommentService struct {
	commentRepo  *repository.CommentRepository
	likeRepo     *repository.CommentLikeRepository
	feedbackRepo *repository.FeedbackRepository
}

func NewCommentService(
	commentRepo *repository.CommentRepository,
	likeRepo *repository.CommentLikeRepository,
	feedbackRepo *repository.FeedbackRepository,
) *CommentService {
	return &CommentService{
		commentRepo:  commentRepo,
		likeRepo:     likeRepo,
		feedbackRepo: feedbackRepo,
	}
}

// Add appends a comment to a feedback thread. The parent feedback's is_read
// and last_viewed_at are never touched here.
func (s *CommentService) Add(ctx context.Context, feedbackID, authorID uuid.UUID, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}
	if authorID == uuid.Nil {
		return nil, fmt.Errorf("%w: author is required", ErrValidation)
	}

	if _, err := s.feedbackRepo.GetByID(ctx, feedbackID); err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return nil, fmt.Errorf("%w: feedback %s", ErrNotFound, feedbackID)
		}
		return nil, err
	}

	comment := &model.Comment{
		ID:         uuid.New(),
		FeedbackID: feedbackID,
		AuthorID:   authorID,
		Content:    content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ToggleLike likes the comment if the user has not liked it, unlikes it
// otherwise. Returns whether the comment is liked after the call.
func (s *CommentService) ToggleLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error) {
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return false, fmt.Errorf("%w: comment %s", ErrNotFound, commentID)
		}
		return false, err
	}
	return s.likeRepo.Toggle(ctx, commentID, userID)
}

// ListByFeedback retrieves the comments of a feedback thread, oldest first.
func (s *CommentService) ListByFeedback(ctx context.Context, feedbackID uuid.UUID) ([]model.Comment, error) {
	return s.commentRepo.GetByFeedbackID(ctx, feedbackID)
}

// LikeCount returns the number of likes on a comment.
func (s *CommentService) LikeCount(ctx context.Context, commentID uuid.UUID) (int64, error) {
	return s.likeRepo.CountByComment(ctx, commentID)
}

// UnreadReplyTasks returns the distinct task ids that carry at least one
// reply the sender has not seen yet.
func (s *CommentService) UnreadReplyTasks(ctx context.Context, senderID uuid.UUID) ([]uuid.UUID, error) {
	feedbacks, err := s.feedbackRepo.GetBySender(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if len(feedbacks) == 0 {
		return []uuid.UUID{}, nil
	}

	feedbackIDs := make([]uuid.UUID, len(feedbacks))
	for i, feedback := range feedbacks {
		feedbackIDs[i] = feedback.ID
	}

	comments, err := s.commentRepo.GetByFeedbackIDs(ctx, feedbackIDs)
	if err != nil {
		return nil, err
	}

	return UnreadReplyTaskIDs(feedbacks, comments, senderID), nil
}

// UnreadReplyTaskIDs computes the distinct set of task ids with replies the
// sender has not seen. The watermark of a feedback is last_viewed_at when
// set; a never-viewed feedback falls back to its own creation time, so
// replies written before the feedback cannot exist and replies after it
// count as unseen. The sender's own comments never count.
func UnreadReplyTaskIDs(feedbacks []model.Feedback, comments []model.Comment, senderID uuid.UUID) []uuid.UUID {
	byID := make(map[uuid.UUID]*model.Feedback, len(feedbacks))
	for i := range feedbacks {
		byID[feedbacks[i].ID] = &feedbacks[i]
	}

	seen := make(map[uuid.UUID]struct{})
	taskIDs := []uuid.UUID{}
	for _, comment := range comments {
		if comment.AuthorID == senderID {
			continue
		}
		feedback, ok := byID[comment.FeedbackID]
		if !ok {
			continue
		}
		watermark := feedback.CreatedAt
		if feedback.LastViewedAt != nil {
			watermark = *feedback.LastViewedAt
		}
		if !comment.CreatedAt.After(watermark) {
			continue
		}
		if _, ok := seen[feedback.TaskID]; ok {
			continue
		}
		seen[feedback.TaskID] = struct{}{}
		taskIDs = append(taskIDs, feedback.TaskID)
	}
	return taskIDs
}
