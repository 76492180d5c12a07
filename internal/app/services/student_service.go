package services

import (
	"context"

	"github.com/classkas/kasku-core/internal/app/errors"
	"github.com/classkas/kasku-core/internal/app/models"
	"github.com/classkas/kasku-core/internal/infrastructures"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentService struct {
	db        *gorm.DB
	validator *infrastructures.Validator
}

func NewStudentService(db *gorm.DB, validator *infrastructures.Validator) *StudentService {
	return &StudentService{
		db:        db,
		validator: validator,
	}
}

func (s *StudentService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	var students []*models.Student
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&students).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to list students")
	}
	return students, nil
}

// GetStudentByNIM looks a student up by enrollment number. The UI uses this as
// its sign-in check.
func (s *StudentService) GetStudentByNIM(ctx context.Context, nim string) (*models.Student, error) {
	var student models.Student
	err := s.db.WithContext(ctx).Where("nim = ?", nim).First(&student).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Student not found")
		}
		return nil, errors.NewInternalServerError(err, "Failed to get student")
	}
	return &student, nil
}

// CreateStudent adds a roster entry and backfills an unpaid dues status for
// every week that already exists, so late joiners show up in the grid.
func (s *StudentService) CreateStudent(ctx context.Context, req *models.StudentCreateRequest) (*models.Student, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	var existing models.Student
	err := s.db.WithContext(ctx).Where("nim = ?", req.NIM).First(&existing).Error
	if err == nil {
		return nil, errors.NewBadRequestError("Student with this NIM already exists")
	}
	if err != gorm.ErrRecordNotFound {
		return nil, errors.NewInternalServerError(err, "Failed to check existing student")
	}

	student := &models.Student{
		ID:   uuid.New(),
		NIM:  req.NIM,
		Name: req.Name,
	}
	if err := s.db.WithContext(ctx).Create(student).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to create student")
	}

	var weeks []*models.DuesWeek
	if err := s.db.WithContext(ctx).Find(&weeks).Error; err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to list dues weeks")
	}
	for _, week := range weeks {
		status := &models.DuesStatus{
			ID:        uuid.New(),
			StudentID: student.ID,
			WeekID:    week.ID,
			Paid:      false,
		}
		if err := s.db.WithContext(ctx).Create(status).Error; err != nil {
			return nil, errors.NewInternalServerError(err, "Failed to create dues status")
		}
	}

	return student, nil
}
