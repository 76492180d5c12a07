package stores

import (
	"context"
	"time"

	"github.com/classkas/kasku-core/internal/app/errors"
	"github.com/classkas/kasku-core/internal/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormLedger struct {
	db *gorm.DB
}

func NewGormLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{db: db}
}

func (l *GormLedger) GetStudent(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	var student models.Student
	err := l.db.WithContext(ctx).Where("id = ?", id).First(&student).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Student not found")
		}
		return nil, err
	}
	return &student, nil
}

func (l *GormLedger) GetDuesWeek(ctx context.Context, id uuid.UUID) (*models.DuesWeek, error) {
	var week models.DuesWeek
	err := l.db.WithContext(ctx).Where("id = ?", id).First(&week).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Dues week not found")
		}
		return nil, err
	}
	return &week, nil
}

func (l *GormLedger) InsertTransaction(ctx context.Context, trx *models.PaymentTransaction) error {
	if err := l.db.WithContext(ctx).Create(trx).Error; err != nil {
		return err
	}
	return nil
}

func (l *GormLedger) GetTransactionByOrderID(ctx context.Context, orderID string) (*models.PaymentTransaction, error) {
	var trx models.PaymentTransaction
	err := l.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&trx).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Payment transaction not found")
		}
		return nil, err
	}

	return &trx, nil
}

func (l *GormLedger) UpdateTransactionStatus(ctx context.Context, orderID string, status models.PaymentStatus) error {
	return l.db.WithContext(ctx).
		Model(&models.PaymentTransaction{}).
		Where("order_id = ?", orderID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (l *GormLedger) MarkPaid(ctx context.Context, studentID, weekID uuid.UUID) (int64, error) {
	result := l.db.WithContext(ctx).
		Model(&models.DuesStatus{}).
		Where("student_id = ? AND week_id = ?", studentID, weekID).
		Updates(map[string]interface{}{
			"paid":       true,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (l *GormLedger) InsertGatewayEvent(ctx context.Context, event *models.GatewayEvent) error {
	return l.db.WithContext(ctx).Create(event).Error
}

func (l *GormLedger) ListGatewayEvents(ctx context.Context, orderID string, limit int) ([]*models.GatewayEvent, error) {
	query := l.db.WithContext(ctx).Model(&models.GatewayEvent{})
	if orderID != "" {
		query = query.Where("order_id = ?", orderID)
	}

	var events []*models.GatewayEvent
	err := query.Order("created_at DESC").Limit(limit).Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
