package services

import (
	"context"

	"github.com/classkas/kasku-core/internal/app/errors"
	"github.com/classkas/kasku-core/internal/app/models"
	"github.com/classkas/kasku-core/internal/infrastructures"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
}

func NewScheduleService(db *gorm.DB, validator *infrastructures.Validator) *ScheduleService {
	return &ScheduleService{
		db:        db,
		validator: validator,
	}
}

func (s *ScheduleService) ListEntries(ctx context.Context) ([]*models.ScheduleEntry, error) {
	var entries []*models.ScheduleEntry
	if err := s.db.WithContext(ctx).Order("day ASC, start_time ASC").Find(&entries).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to list schedule entries")
	}
	return entries, nil
}

func (s *ScheduleService) CreateEntry(ctx context.Context, req *models.ScheduleCreateRequest) (*models.ScheduleEntry, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	entry := &models.ScheduleEntry{
		ID:        uuid.New(),
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Course:    req.Course,
		Room:      req.Room,
		Lecturer:  req.Lecturer,
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create schedule entry")
	}
	return entry, nil
}

func (s *ScheduleService) UpdateEntry(ctx context.Context, id string, req *models.ScheduleUpdateRequest) (*models.ScheduleEntry, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	entryID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.NewValidationError("Invalid schedule entry ID format")
	}

	var entry models.ScheduleEntry
	if err := s.db.WithContext(ctx).Where("id = ?", entryID).First(&entry).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Schedule entry not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get schedule entry")
	}

	updates := map[string]interface{}{}
	if req.Day != nil {
		updates["day"] = *req.Day
	}
	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		updates["end_time"] = *req.EndTime
	}
	if req.Course != nil {
		updates["course"] = *req.Course
	}
	if req.Room != nil {
		updates["room"] = *req.Room
	}
	if req.Lecturer != nil {
		updates["lecturer"] = *req.Lecturer
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&entry).Updates(updates).Error; err != nil {
			return nil, errors.NewInternalServerError(err, "Failed to update schedule entry")
		}
	}
	return &entry, nil
}

func (s *ScheduleService) DeleteEntry(ctx context.Context, id string) error {
	entryID, err := uuid.Parse(id)
	if err != nil {
		return errors.NewValidationError("Invalid schedule entry ID format")
	}

	result := s.db.WithContext(ctx).Where("id = ?", entryID).Delete(&models.ScheduleEntry{})
	if result.Error != nil {
		return errors.NewInternalServerError(result.Error, "Failed to delete schedule entry")
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Schedule entry not found")
	}
	return nil
}
