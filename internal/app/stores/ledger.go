package stores

import (
	"context"

	"github.com/classkas/kasku-core/internal/app/models"
	"github.com/google/uuid"
)

// LedgerStore is the slice of the relational store the payment flow touches.
// Handlers perform sequential single-row operations through it and must
// tolerate partial completion; no multi-row transaction is assumed.
type LedgerStore interface {
	GetStudent(ctx context.Context, id uuid.UUID) (*models.Student, error)
	GetDuesWeek(ctx context.Context, id uuid.UUID) (*models.DuesWeek, error)
	InsertTransaction(ctx context.Context, trx *models.PaymentTransaction) error
	GetTransactionByOrderID(ctx context.Context, orderID string) (*models.PaymentTransaction, error)
	UpdateTransactionStatus(ctx context.Context, orderID string, status models.PaymentStatus) error
	// MarkPaid reports how many dues status rows it touched; zero means the
	// (student, week) pair has no status row to flip.
	MarkPaid(ctx context.Context, studentID, weekID uuid.UUID) (int64, error)
	InsertGatewayEvent(ctx context.Context, event *models.GatewayEvent) error
	ListGatewayEvents(ctx context.Context, orderID string, limit int) ([]*models.GatewayEvent, error)
}
