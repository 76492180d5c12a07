package services

import (
	"context"

	"github.com/classkas/kasku-core/internal/app/errors"
	"github.com/classkas/kasku-core/internal/app/models"
	"github.com/classkas/kasku-core/internal/infrastructures"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DuesService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
}

func NewDuesService(db *gorm.DB, validator *infrastructures.Validator) *DuesService {
	return &DuesService{
		db:        db,
		validator: validator,
	}
}

// CreateWeek opens the next billable week (max+1) and bulk-creates one unpaid
// status row per enrolled student.
func (s *DuesService) CreateWeek(ctx context.Context, req *models.DuesWeekCreateRequest) (*models.DuesWeek, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	var maxWeek int
	row := s.db.WithContext(ctx).Model(&models.DuesWeek{}).Select("COALESCE(MAX(week), 0)").Row()
	if err := row.Scan(&maxWeek); err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to determine next week number")
	}

	week := &models.DuesWeek{
		ID:     uuid.New(),
		Week:   maxWeek + 1,
		Amount: req.Amount,
	}
	if err := s.db.WithContext(ctx).Create(week).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create dues week")
	}

	var students []*models.Student
	if err := s.db.WithContext(ctx).Find(&students).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to list students")
	}

	statuses := make([]*models.DuesStatus, 0, len(students))
	for _, student := range students {
		statuses = append(statuses, &models.DuesStatus{
			ID:        uuid.New(),
			StudentID: student.ID,
			WeekID:    week.ID,
			Paid:      false,
		})
	}
	if len(statuses) > 0 {
		if err := s.db.WithContext(ctx).Create(statuses).Error; err != nil {
			return nil, errors.NewInternalServerError(err, "Failed to create dues statuses")
		}
	}

	return week, nil
}

func (s *DuesService) ListWeeks(ctx context.Context) ([]*models.DuesWeek, error) {
	var weeks []*models.DuesWeek
	if err := s.db.WithContext(ctx).Order("week ASC").Find(&weeks).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to list dues weeks")
	}
	return weeks, nil
}

func (s *DuesService) ListStatuses(ctx context.Context, studentID string) ([]*models.DuesStatus, error) {
	query := s.db.WithContext(ctx)
	if studentID != "" {
		id, err := uuid.Parse(studentID)
		if err != nil {
			return nil, errors.NewValidationError("Invalid student ID format")
		}
		query = query.Where("student_id = ?", id)
	}

	var statuses []*models.DuesStatus
	if err := query.Find(&statuses).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to list dues statuses")
	}
	return statuses, nil
}

// SetStatus is the manual admin toggle. Unlike settlement reconciliation it
// may flip a status in either direction.
func (s *DuesService) SetStatus(ctx context.Context, req *models.DuesStatusUpdateRequest) error {
	if err := s.validator.Validate(req); err != nil {
		return err
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return errors.NewValidationError("Invalid student ID format")
	}
	weekID, err := uuid.Parse(req.WeekID)
	if err != nil {
		return errors.NewValidationError("Invalid week ID format")
	}

	result := s.db.WithContext(ctx).
		Model(&models.DuesStatus{}).
		Where("student_id = ? AND week_id = ?", studentID, weekID).
		Update("paid", req.Paid)

	if result.Error != nil {
		return errors.NewInternalServerError(result.Error, "Failed to update dues status")
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Dues status not found")
	}
	return nil
}

func (s *DuesService) AddExpense(ctx context.Context, req *models.CashEntryCreateRequest) (*models.CashEntry, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	entry := &models.CashEntry{
		ID:          uuid.New(),
		Kind:        models.CashEntryKindExpense,
		Description: req.Description,
		Amount:      req.Amount,
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create cash entry")
	}
	return entry, nil
}

func (s *DuesService) ListExpenses(ctx context.Context) ([]*models.CashEntry, error) {
	var entries []*models.CashEntry
	err := s.db.WithContext(ctx).
		Where("kind = ?", models.CashEntryKindExpense).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to list cash entries")
	}
	return entries, nil
}

// Summary derives the cash position: collected dues (paid statuses priced at
// their week's amount) minus recorded expenses.
func (s *DuesService) Summary(ctx context.Context) (*models.CashSummary, error) {
	var collected int64
	err := s.db.WithContext(ctx).
		Model(&models.DuesStatus{}).
		Select("COALESCE(SUM(dues_weeks.amount), 0)").
		Joins("JOIN dues_weeks ON dues_weeks.id = dues_statuses.week_id").
		Where("dues_statuses.paid = ?", true).
		Row().Scan(&collected)
	if err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to sum collected dues")
	}

	var expense int64
	err = s.db.WithContext(ctx).
		Model(&models.CashEntry{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("kind = ?", models.CashEntryKindExpense).
		Row().Scan(&expense)
	if err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to sum expenses")
	}

	totalCollected := decimal.NewFromInt(collected)
	totalExpense := decimal.NewFromInt(expense)

	return &models.CashSummary{
		TotalCollected: totalCollected,
		TotalExpense:   totalExpense,
		Balance:        totalCollected.Sub(totalExpense),
	}, nil
}
