package services

import (
	"context"
	"time"

	"github.com/classkas/kasku-core/internal/app/errors"
	"github.com/classkas/kasku-core/internal/app/models"
	"github.com/classkas/kasku-core/internal/infrastructures"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
}

func NewTaskService(db *gorm.DB, validator *infrastructures.Validator) *TaskService {
	return &TaskService{
		db:        db,
		validator: validator,
	}
}

func (s *TaskService) ListTasks(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	if err := s.db.WithContext(ctx).Order("deadline ASC").Find(&tasks).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to list tasks")
	}
	return tasks, nil
}

func (s *TaskService) CreateTask(ctx context.Context, req *models.TaskCreateRequest) (*models.Task, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:          uuid.New(),
		Course:      req.Course,
		Description: req.Description,
		Deadline:    req.Deadline,
	}
	if err := s.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create task")
	}
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, req *models.TaskUpdateRequest) (*models.Task, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	taskID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.NewValidationError("Invalid task ID format")
	}

	var task models.Task
	if err := s.db.WithContext(ctx).Where("id = ?", taskID).First(&task).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Task not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get task")
	}

	updates := map[string]interface{}{}
	if req.Course != nil {
		updates["course"] = *req.Course
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Deadline != nil {
		updates["deadline"] = *req.Deadline
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&task).Updates(updates).Error; err != nil {
			return nil, errors.NewInternalServerError(err, "Failed to update task")
		}
	}
	return &task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return errors.NewValidationError("Invalid task ID format")
	}

	result := s.db.WithContext(ctx).Where("id = ?", taskID).Delete(&models.Task{})
	if result.Error != nil {
		return errors.NewInternalServerError(result.Error, "Failed to delete task")
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Task not found")
	}
	return nil
}

// DeleteExpired removes tasks whose deadline has passed. The client used to do
// this on page load; it is an explicit endpoint here.
func (s *TaskService) DeleteExpired(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Where("deadline < ?", time.Now()).Delete(&models.Task{})
	if result.Error != nil {
		return 0, errors.NewInternalServerError(result.Error, "Failed to delete expired tasks")
	}
	return result.RowsAffected, nil
}
