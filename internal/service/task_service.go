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

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title       string
	Description string
	AssigneeID  uuid.UUID
	Deadline    time.Time
	Status      string
}

// TaskUpdateInput represents a status update. Nil fields are left untouched.
type TaskUpdateInput struct {
	Status   string
	Progress *int
	Deadline *time.Time
	Memo     *string
}

// TaskService keeps a task's status, progress and urgency mutually
// consistent.
type TaskService struct {
	taskRepo      *repository.TaskRepository
	notifications *NotificationService
	now           func() time.Time
}

func NewTaskService(taskRepo *repository.TaskRepository, notifications *NotificationService) *TaskService {
	return &TaskService{
		taskRepo:      taskRepo,
		notifications: notifications,
		now:           time.Now,
	}
}

// Create registers a new task for its assignee. A task cannot be registered
// already finished. Initial progress is derived from the status and urgency
// from the deadline. The assignment notification is fire-and-forget: its
// failure never rolls the task back.
func (s *TaskService) Create(ctx context.Context, input TaskInput) (*model.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if input.Deadline.IsZero() {
		return nil, fmt.Errorf("%w: deadline is required", ErrValidation)
	}
	if input.AssigneeID == uuid.Nil {
		return nil, fmt.Errorf("%w: assignee is required", ErrValidation)
	}
	if input.Status == model.StatusCompleted {
		return nil, fmt.Errorf("%w: a task cannot be registered already completed", ErrValidation)
	}
	if input.Status != model.StatusTodo && input.Status != model.StatusInProgress {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, input.Status)
	}

	progress := 0
	if input.Status == model.StatusInProgress {
		progress = 50
	}

	task := &model.Task{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		AssigneeID:  input.AssigneeID,
		Status:      input.Status,
		Progress:    progress,
		Deadline:    input.Deadline,
		Urgency:     model.UrgencyFor(input.Deadline, s.now()),
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.notifications.TaskAssigned(ctx, task)

	return task, nil
}

// UpdateStatus applies a status update. Supplied progress is clamped to
// [0,100]; a completed status forces progress to 100 regardless of input.
// Urgency is recomputed only when a new deadline is supplied. Transitions
// are unrestricted: completed may go back to todo.
func (s *TaskService) UpdateStatus(ctx context.Context, taskID uuid.UUID, input TaskUpdateInput) (*model.Task, error) {
	if input.Status != model.StatusTodo && input.Status != model.StatusInProgress && input.Status != model.StatusCompleted {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, input.Status)
	}

	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	task.Status = input.Status
	if input.Progress != nil {
		task.Progress = clampProgress(*input.Progress)
	}
	if input.Status == model.StatusCompleted {
		task.Progress = 100
	}
	if input.Deadline != nil {
		task.Deadline = *input.Deadline
		task.Urgency = model.UrgencyFor(*input.Deadline, s.now())
	}
	if input.Memo != nil {
		task.Memo = *input.Memo
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateDeadline changes only the deadline and its derived urgency. Status
// and progress stay untouched.
func (s *TaskService) UpdateDeadline(ctx context.Context, taskID uuid.UUID, deadline time.Time) (*model.Task, error) {
	if deadline.IsZero() {
		return nil, fmt.Errorf("%w: deadline is required", ErrValidation)
	}

	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	task.Deadline = deadline
	task.Urgency = model.UrgencyFor(deadline, s.now())

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task. Only the assignee may delete it; the check ignores
// the requester's role.
func (s *TaskService) Delete(ctx context.Context, taskID, requesterID uuid.UUID) error {
	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return err
	}
	if task.AssigneeID != requesterID {
		return fmt.Errorf("%w: only the assignee may delete a task", ErrPermission)
	}
	return s.taskRepo.Delete(ctx, taskID)
}

// Get retrieves a single task.
func (s *TaskService) Get(ctx context.Context, taskID uuid.UUID) (*model.Task, error) {
	return s.getTask(ctx, taskID)
}

// ListByAssignee retrieves all tasks of an assignee.
func (s *TaskService) ListByAssignee(ctx context.Context, assigneeID uuid.UUID) ([]model.Task, error) {
	return s.taskRepo.GetByAssignee(ctx, assigneeID)
}

func (s *TaskService) getTask(ctx context.Context, taskID uuid.UUID) (*model.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, fmt.Errorf("%w: task %s", ErrNotFound, taskID)
		}
		return nil, err
	}
	return task, nil
}

func clampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
