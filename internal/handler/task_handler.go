package handler

import (
	"net/http"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskHandler struct {
	tasks *service.TaskService
}

func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// TaskCreateRequest представляет запрос на регистрацию задачи
type TaskCreateRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline" binding:"required"`
	Status      string    `json:"status" binding:"required,oneof=todo in_progress completed"`
}

// TaskUpdateRequest представляет запрос на обновление статуса задачи
type TaskUpdateRequest struct {
	Status   string     `json:"status" binding:"required,oneof=todo in_progress completed"`
	Progress *int       `json:"progress"`
	Deadline *time.Time `json:"deadline"`
	Memo     *string    `json:"memo"`
}

// TaskDeadlineRequest представляет запрос на перенос срока
type TaskDeadlineRequest struct {
	Deadline time.Time `json:"deadline" binding:"required"`
}

// TaskResponse представляет ответ с данными задачи
type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AssigneeID  string `json:"assignee_id"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"`
	Deadline    string `json:"deadline"`
	Urgency     string `json:"urgency"`
	Memo        string `json:"memo,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func taskResponse(task *model.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		AssigneeID:  task.AssigneeID.String(),
		Status:      task.Status,
		Progress:    task.Progress,
		Deadline:    task.Deadline.Format(time.RFC3339),
		Urgency:     task.Urgency,
		Memo:        task.Memo,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}
}

// Create регистрирует новую задачу за текущим пользователем
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// Задачу регистрирует сам исполнитель
	task, err := h.tasks.Create(c.Request.Context(), service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  userID,
		Deadline:    req.Deadline,
		Status:      req.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, taskResponse(task))
}

// GetByID получает задачу по ID
func (h *TaskHandler) GetByID(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	task, err := h.tasks.Get(c.Request.Context(), taskID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskResponse(task))
}

// List получает все задачи текущего пользователя
func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.ListByAssignee(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response := make([]TaskResponse, len(tasks))
	for i := range tasks {
		response[i] = taskResponse(&tasks[i])
	}

	c.JSON(http.StatusOK, response)
}

// Update обновляет статус, прогресс, срок и заметку задачи
func (h *TaskHandler) Update(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.tasks.UpdateStatus(c.Request.Context(), taskID, service.TaskUpdateInput{
		Status:   req.Status,
		Progress: req.Progress,
		Deadline: req.Deadline,
		Memo:     req.Memo,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskResponse(task))
}

// SetDeadline переносит срок задачи, не трогая статус и прогресс
func (h *TaskHandler) SetDeadline(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req TaskDeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.tasks.UpdateDeadline(c.Request.Context(), taskID, req.Deadline)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, taskResponse(task))
}

// Delete удаляет задачу. Удалить задачу может только ее исполнитель.
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), taskID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
