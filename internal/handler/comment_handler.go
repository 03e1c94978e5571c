package handler

import (
	"net/http"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CommentHandler struct {
	comments *service.CommentService
}

func NewCommentHandler(comments *service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// CommentRequest представляет запрос на добавление комментария
type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentResponse представляет ответ с данными комментария
type CommentResponse struct {
	ID         string `json:"id"`
	FeedbackID string `json:"feedback_id"`
	AuthorID   string `json:"author_id"`
	Content    string `json:"content"`
	Likes      int64  `json:"likes"`
	CreatedAt  string `json:"created_at"`
}

func commentResponse(comment *model.Comment, likes int64) CommentResponse {
	return CommentResponse{
		ID:         comment.ID.String(),
		FeedbackID: comment.FeedbackID.String(),
		AuthorID:   comment.AuthorID.String(),
		Content:    comment.Content,
		Likes:      likes,
		CreatedAt:  comment.CreatedAt.Format(time.RFC3339),
	}
}

// Add добавляет комментарий в ветку обратной связи
func (h *CommentHandler) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	feedbackID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback ID format"})
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	comment, err := h.comments.Add(c.Request.Context(), feedbackID, userID, req.Content)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, commentResponse(comment, 0))
}

// ListByFeedback возвращает комментарии ветки с числом лайков
func (h *CommentHandler) ListByFeedback(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	feedbackID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback ID format"})
		return
	}

	comments, err := h.comments.ListByFeedback(c.Request.Context(), feedbackID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response := make([]CommentResponse, len(comments))
	for i := range comments {
		likes, err := h.comments.LikeCount(c.Request.Context(), comments[i].ID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		response[i] = commentResponse(&comments[i], likes)
	}

	c.JSON(http.StatusOK, response)
}

// ToggleLike ставит или снимает лайк текущего пользователя
func (h *CommentHandler) ToggleLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID format"})
		return
	}

	liked, err := h.comments.ToggleLike(c.Request.Context(), commentID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// UnreadReplyTasks возвращает задачи с непросмотренными ответами на
// обратную связь текущего пользователя
func (h *CommentHandler) UnreadReplyTasks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskIDs, err := h.comments.UnreadReplyTasks(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response := make([]string, len(taskIDs))
	for i, id := range taskIDs {
		response[i] = id.String()
	}

	c.JSON(http.StatusOK, gin.H{"task_ids": response})
}
