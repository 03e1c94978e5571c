package handler

import (
	"net/http"
	"strconv"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FeedbackHandler struct {
	feedback *service.FeedbackService
}

func NewFeedbackHandler(feedback *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// FeedbackSendRequest представляет запрос на отправку обратной связи
type FeedbackSendRequest struct {
	TaskID      string `json:"task_id" binding:"required,uuid"`
	RecipientID string `json:"recipient_id" binding:"required,uuid"`
	Message     string `json:"message" binding:"required"`
}

// FeedbackViewedRequest представляет отметку просмотра ответов отправителем
type FeedbackViewedRequest struct {
	FeedbackIDs []string `json:"feedback_ids" binding:"required,dive,uuid"`
}

// FeedbackResponse представляет ответ с данными обратной связи
type FeedbackResponse struct {
	ID           string  `json:"id"`
	TaskID       string  `json:"task_id"`
	SenderID     string  `json:"sender_id"`
	RecipientID  string  `json:"recipient_id"`
	Message      string  `json:"message"`
	IsRead       bool    `json:"is_read"`
	LastViewedAt *string `json:"last_viewed_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

func feedbackResponse(feedback *model.Feedback) FeedbackResponse {
	response := FeedbackResponse{
		ID:          feedback.ID.String(),
		TaskID:      feedback.TaskID.String(),
		SenderID:    feedback.SenderID.String(),
		RecipientID: feedback.RecipientID.String(),
		Message:     feedback.Message,
		IsRead:      feedback.IsRead,
		CreatedAt:   feedback.CreatedAt.Format(time.RFC3339),
	}
	if feedback.LastViewedAt != nil {
		viewedAt := feedback.LastViewedAt.Format(time.RFC3339)
		response.LastViewedAt = &viewedAt
	}
	return response
}

// Send отправляет обратную связь по задаче
func (h *FeedbackHandler) Send(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req FeedbackSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}
	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipient ID format"})
		return
	}

	feedback, err := h.feedback.Send(c.Request.Context(), taskID, userID, recipientID, req.Message)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, feedbackResponse(feedback))
}

// MarkRead помечает обратную связь прочитанной получателем
func (h *FeedbackHandler) MarkRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	feedbackID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback ID format"})
		return
	}

	if err := h.feedback.MarkRead(c.Request.Context(), feedbackID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback marked as read"})
}

// MarkViewed ставит отметку отправителя на перечисленных обращениях
func (h *FeedbackHandler) MarkViewed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req FeedbackViewedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	feedbackIDs := make([]uuid.UUID, len(req.FeedbackIDs))
	for i, idStr := range req.FeedbackIDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback ID format"})
			return
		}
		feedbackIDs[i] = id
	}

	if err := h.feedback.MarkViewed(c.Request.Context(), feedbackIDs, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback marked as viewed"})
}

// ListUnread возвращает непрочитанную обратную связь текущего пользователя.
// Параметр limit ограничивает выборку для предпросмотра.
func (h *FeedbackHandler) ListUnread(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	feedbacks, err := h.feedback.ListUnread(c.Request.Context(), userID, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response := make([]FeedbackResponse, len(feedbacks))
	for i := range feedbacks {
		response[i] = feedbackResponse(&feedbacks[i])
	}

	c.JSON(http.StatusOK, response)
}
