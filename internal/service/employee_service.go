package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"taskboard/internal/repository"
)

// EmployeeService removes an employee together with their dependent
// records.
type EmployeeService struct {
	userRepo     *repository.UserRepository
	taskRepo     *repository.TaskRepository
	feedbackRepo *repository.FeedbackRepository
}

func NewEmployeeService(
	userRepo *repository.UserRepository,
	taskRepo *repository.TaskRepository,
	feedbackRepo *repository.FeedbackRepository,
) *EmployeeService {
	return &EmployeeService{
		userRepo:     userRepo,
		taskRepo:     taskRepo,
		feedbackRepo: feedbackRepo,
	}
}

// Delete removes an employee, their tasks and the feedback attached to
// those tasks, in that order and without a cross-statement transaction.
// A task-deletion failure aborts before anything else runs. A
// feedback-deletion failure is logged and swallowed, so tasks stay gone
// while their feedback survives. A profile-deletion failure propagates
// after steps one and two have already committed. Comments and likes under
// the removed feedback are left in place.
func (s *EmployeeService) Delete(ctx context.Context, employeeID uuid.UUID) error {
	tasks, err := s.taskRepo.GetByAssignee(ctx, employeeID)
	if err != nil {
		return err
	}

	if len(tasks) > 0 {
		taskIDs := make([]uuid.UUID, len(tasks))
		for i, task := range tasks {
			taskIDs[i] = task.ID
		}

		if err := s.taskRepo.DeleteByAssignee(ctx, employeeID); err != nil {
			return err
		}

		if err := s.feedbackRepo.DeleteByTaskIDs(ctx, taskIDs); err != nil {
			log.Printf("⚠️  Failed to delete feedback for employee %s, continuing: %v", employeeID, err)
		}
	}

	if err := s.userRepo.Delete(ctx, employeeID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return fmt.Errorf("%w: employee %s", ErrNotFound, employeeID)
		}
		return err
	}
	return nil
}
