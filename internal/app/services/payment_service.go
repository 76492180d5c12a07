package services

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/classkas/kasku-core/internal/app/errors"
	"github.com/classkas/kasku-core/internal/app/models"
	"github.com/classkas/kasku-core/internal/app/pkg"
	"github.com/classkas/kasku-core/internal/app/stores"
	"github.com/classkas/kasku-core/internal/infrastructures"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PaymentService owns the charge creation flow and both reconciliation paths
// (client poll and provider webhook). All state transitions key strictly on
// order_id; "latest row for this student and week" is never assumed, because
// retries legitimately create multiple rows per pair.
type PaymentService struct {
	ledger    stores.LedgerStore
	gateway   Gateway
	builder   *ChargeBuilder
	validator *infrastructures.Validator
	serverKey string
}

func NewPaymentService(ledger stores.LedgerStore, gateway Gateway, builder *ChargeBuilder, validator *infrastructures.Validator, config *infrastructures.AppConfig) *PaymentService {
	return &PaymentService{
		ledger:    ledger,
		gateway:   gateway,
		builder:   builder,
		validator: validator,
		serverKey: config.MidtransServerKey,
	}
}

// CreatePayment charges the provider for a (student, week) pair and persists
// the pending transaction row. Deliberately not idempotent: every call mints a
// fresh order id and a fresh provider charge; deduplication of user retries is
// a caller concern.
func (s *PaymentService) CreatePayment(ctx context.Context, req *models.PaymentCreateRequest) (*models.PaymentCreateResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return nil, errors.NewValidationError("Invalid student ID format")
	}
	weekID, err := uuid.Parse(req.WeekID)
	if err != nil {
		return nil, errors.NewValidationError("Invalid week ID format")
	}

	// The referenced rows must exist before money moves: a charge for an
	// unknown (student, week) pair would settle provider-side with no dues
	// status to flip.
	if _, err := s.ledger.GetStudent(ctx, studentID); err != nil {
		return nil, err
	}
	if _, err := s.ledger.GetDuesWeek(ctx, weekID); err != nil {
		return nil, err
	}

	orderID := pkg.BuildOrderID(req.WeekNumber, req.StudentID, time.Now())

	chargeReq, err := s.builder.Build(req.Method, orderID, req.Amount, req.StudentName, req.WeekNumber)
	if err != nil {
		return nil, err
	}

	chargeResp, err := s.gateway.Charge(ctx, chargeReq)
	if err != nil {
		// Nothing was persisted; the caller may simply retry.
		return nil, errors.NewGatewayError(err, "Failed to create payment")
	}

	presentation, extractErr := s.builder.ExtractPresentation(req.Method, chargeResp)
	// The provider has recorded a transaction whether or not the response is
	// usable, so the row is persisted even when extraction fails; the empty
	// presentation value flags it for manual follow-up.
	if extractErr != nil {
		logrus.WithField("order_id", orderID).Warn("charge accepted but presentation value missing")
	}

	trx := &models.PaymentTransaction{
		ID:         uuid.New(),
		OrderID:    orderID,
		StudentID:  studentID,
		WeekID:     weekID,
		Amount:     req.Amount,
		Method:     req.Method,
		Status:     models.PaymentStatusPending,
		PaymentURL: presentation.URLValue(),
	}

	if err := s.ledger.InsertTransaction(ctx, trx); err != nil {
		// Money is charged provider-side with no local record: the order id
		// must survive in the logs for manual reconciliation.
		return nil, errors.NewPersistenceError(err, orderID, "Failed to save payment transaction")
	}

	if extractErr != nil {
		return nil, extractErr
	}

	return &models.PaymentCreateResponse{
		Method:      req.Method,
		OrderID:     orderID,
		PaymentID:   trx.ID,
		QRURL:       presentation.QRURL,
		VA:          presentation.VA,
		DeeplinkURL: presentation.DeeplinkURL,
	}, nil
}

// CheckStatus is the poll-driven reconciliation path. The caller is an
// authenticated same-origin client, so no signature check applies here.
func (s *PaymentService) CheckStatus(ctx context.Context, req *models.PaymentStatusRequest) (*models.PaymentStatusResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	statusResp, err := s.gateway.Status(ctx, req.OrderID)
	if err != nil {
		return nil, errors.NewGatewayError(err, "Failed to check payment status")
	}

	if err := s.applyStatus(ctx, req.OrderID, mapProviderStatus(statusResp.TransactionStatus)); err != nil {
		return nil, err
	}

	return &models.PaymentStatusResponse{
		Status:      statusResp.TransactionStatus,
		FraudStatus: statusResp.FraudStatus,
		GrossAmount: statusResp.GrossAmount,
	}, nil
}

// HandleNotification is the webhook-driven reconciliation path. The signature
// gate runs before any mutation; a forged settlement must leave both the
// transaction and the paid flag untouched.
func (s *PaymentService) HandleNotification(ctx context.Context, notification *models.GatewayNotification) error {
	if err := s.validator.Validate(notification); err != nil {
		return err
	}

	signatureOK := VerifyNotificationSignature(notification, s.serverKey)

	payload, _ := json.Marshal(notification)
	event := &models.GatewayEvent{
		ID:          uuid.New(),
		OrderID:     notification.OrderID,
		StatusCode:  notification.StatusCode,
		SignatureOK: signatureOK,
		Payload:     payload,
	}
	if err := s.ledger.InsertGatewayEvent(ctx, event); err != nil {
		logrus.WithField("order_id", notification.OrderID).Errorf("failed to record gateway event: %v", err)
	}

	if !signatureOK {
		return errors.NewSignatureMismatchError(notification.OrderID)
	}

	status := models.PaymentStatusFailed
	if notification.StatusCode == "200" {
		status = models.PaymentStatusSettlement
	}

	return s.applyStatus(ctx, notification.OrderID, status)
}

// applyStatus updates the transaction row and, on settlement, flips the
// (student, week) dues status to paid. Both paths compute the same target
// state from the provider's truth, so concurrent convergent writes and repeat
// webhook deliveries are harmless. The paid flag only ever moves forward:
// a later non-settlement status overwrites the stored transaction status but
// never unsets a paid flag.
func (s *PaymentService) applyStatus(ctx context.Context, orderID string, status models.PaymentStatus) error {
	if err := s.ledger.UpdateTransactionStatus(ctx, orderID, status); err != nil {
		return errors.NewPersistenceError(err, orderID, "Failed to update payment status")
	}

	if status != models.PaymentStatusSettlement {
		return nil
	}

	trx, err := s.ledger.GetTransactionByOrderID(ctx, orderID)
	if err != nil {
		var appErr *errors.AppError
		// A notification can outrun the local insert; the provider retries,
		// so an unknown order id is a no-op rather than a failure.
		if stderrors.As(err, &appErr) && appErr.StatusCode == http.StatusNotFound {
			logrus.WithField("order_id", orderID).Warn("settlement for unknown order id")
			return nil
		}
		return errors.NewPersistenceError(err, orderID, "Failed to load payment transaction")
	}

	rows, err := s.ledger.MarkPaid(ctx, trx.StudentID, trx.WeekID)
	if err != nil {
		return errors.NewPersistenceError(err, orderID, "Failed to update dues status")
	}
	if rows == 0 {
		logrus.WithField("order_id", orderID).Warn("settlement with no dues status row to flip")
	}

	return nil
}

// ListGatewayEvents exposes the recorded webhook deliveries for inspection.
// Rejected deliveries are included; the signature_ok flag tells them apart.
func (s *PaymentService) ListGatewayEvents(ctx context.Context, orderID string, limit int) ([]*models.GatewayEvent, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	events, err := s.ledger.ListGatewayEvents(ctx, orderID, limit)
	if err != nil {
		return nil, errors.NewInternalServerError(err, "Failed to list gateway events")
	}
	return events, nil
}

// mapProviderStatus folds the provider's transaction status vocabulary into
// the local state machine. Only "settlement" triggers the paid flag flip.
func mapProviderStatus(transactionStatus string) models.PaymentStatus {
	switch transactionStatus {
	case "settlement":
		return models.PaymentStatusSettlement
	case "deny", "cancel", "expire", "failure":
		return models.PaymentStatusFailed
	default:
		return models.PaymentStatusPending
	}
}
