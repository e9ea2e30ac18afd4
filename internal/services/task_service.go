package services

import (
	"errors"
	"fmt"

	"github.com/jestatech/jts-site/internal/constants"
	"github.com/jestatech/jts-site/internal/dto"
	"github.com/jestatech/jts-site/internal/models"
	"github.com/jestatech/jts-site/internal/repository"
	"gorm.io/gorm"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskService wraps task persistence, filling defaults on create.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// GetAllTasks returns every task, newest first.
func (s *TaskService) GetAllTasks() ([]models.Task, error) {
	return s.taskRepo.FindAll()
}

// GetTaskByID returns one task.
func (s *TaskService) GetTaskByID(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// GetTasksByStatus returns tasks with one status, highest priority first.
func (s *TaskService) GetTasksByStatus(status string) ([]models.Task, error) {
	return s.taskRepo.FindByStatus(status)
}

// GetTasksByPriority returns tasks with one priority.
func (s *TaskService) GetTasksByPriority(priority string) ([]models.Task, error) {
	return s.taskRepo.FindByPriority(priority)
}

// GetTasksByAssignedTo returns tasks assigned to one person.
func (s *TaskService) GetTasksByAssignedTo(assignedTo string) ([]models.Task, error) {
	return s.taskRepo.FindByAssignedTo(assignedTo)
}

// GetTasksByProject returns tasks attached to one project.
func (s *TaskService) GetTasksByProject(projectID uint64) ([]models.Task, error) {
	return s.taskRepo.FindByProjectID(projectID)
}

// CreateTask persists a new task, defaulting status to TODO and priority to
// MEDIUM when absent.
func (s *TaskService) CreateTask(task models.Task) (*models.Task, error) {
	if task.Status == "" {
		task.Status = constants.DefaultTaskStatus
	}
	if task.Priority == "" {
		task.Priority = constants.DefaultTaskPriority
	}

	if err := s.taskRepo.Save(&task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

// UpdateTask applies a patch to a stored task and persists the result.
func (s *TaskService) UpdateTask(id uint64, patch dto.TaskPatch) (*models.Task, error) {
	task, err := s.GetTaskByID(id)
	if err != nil {
		return nil, err
	}

	patch.Apply(task)

	if err := s.taskRepo.Save(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// UpdateTaskStatus changes only a task's status.
func (s *TaskService) UpdateTaskStatus(id uint64, status string) (*models.Task, error) {
	task, err := s.GetTaskByID(id)
	if err != nil {
		return nil, err
	}

	task.Status = status

	if err := s.taskRepo.Save(task); err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}
	return task, nil
}

// DeleteTask removes a task by ID.
func (s *TaskService) DeleteTask(id uint64) error {
	exists, err := s.taskRepo.ExistsByID(id)
	if err != nil {
		return fmt.Errorf("failed to check task: %w", err)
	}
	if !exists {
		return ErrTaskNotFound
	}
	return s.taskRepo.DeleteByID(id)
}

// GetTaskStats counts tasks per tracked status plus a TOTAL entry.
func (s *TaskService) GetTaskStats() (map[string]int64, error) {
	stats := make(map[string]int64, len(constants.TaskStatuses)+1)

	for _, status := range constants.TaskStatuses {
		count, err := s.taskRepo.CountByStatus(status)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s tasks: %w", status, err)
		}
		stats[status] = count
	}

	total, err := s.taskRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}
	stats["TOTAL"] = total

	return stats, nil
}
