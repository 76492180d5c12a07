package services

import (
	"context"
	"strings"
	"testing"

	"github.com/classkas/kasku-core/internal/app/errors"
	"github.com/classkas/kasku-core/internal/app/models"
	"github.com/classkas/kasku-core/internal/app/stores"
	"github.com/classkas/kasku-core/internal/infrastructures"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	chargeResp *models.MidtransChargeResponse
	chargeErr  error
	statusResp *models.MidtransStatusResponse
	statusErr  error

	lastCharge    *models.MidtransChargeRequest
	chargeCalls   int
	lastStatusArg string
}

func (g *fakeGateway) Charge(ctx context.Context, req *models.MidtransChargeRequest) (*models.MidtransChargeResponse, error) {
	g.chargeCalls++
	g.lastCharge = req
	if g.chargeErr != nil {
		return nil, g.chargeErr
	}
	return g.chargeResp, nil
}

func (g *fakeGateway) Status(ctx context.Context, orderID string) (*models.MidtransStatusResponse, error) {
	g.lastStatusArg = orderID
	if g.statusErr != nil {
		return nil, g.statusErr
	}
	return g.statusResp, nil
}

type fakeLedger struct {
	students     map[uuid.UUID]*models.Student
	weeks        map[uuid.UUID]*models.DuesWeek
	statuses     map[string]bool
	transactions map[string]*models.PaymentTransaction
	paid         map[string]int
	events       []*models.GatewayEvent
	insertErr    error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		students:     map[uuid.UUID]*models.Student{},
		weeks:        map[uuid.UUID]*models.DuesWeek{},
		statuses:     map[string]bool{},
		transactions: map[string]*models.PaymentTransaction{},
		paid:         map[string]int{},
	}
}

func paidKey(studentID, weekID uuid.UUID) string {
	return studentID.String() + "/" + weekID.String()
}

// seedRoster creates the student, week and unpaid status row the canonical
// create request refers to.
func (l *fakeLedger) seedRoster() (uuid.UUID, uuid.UUID) {
	studentID := uuid.MustParse("9f8b6c1a-2d3e-4f50-a1b2-c3d4e5f60718")
	weekID := uuid.MustParse("11111111-2222-4333-8444-555555555555")
	l.students[studentID] = &models.Student{ID: studentID, NIM: "2141762039", Name: "Ada"}
	l.weeks[weekID] = &models.DuesWeek{ID: weekID, Week: 3, Amount: 20000}
	l.statuses[paidKey(studentID, weekID)] = true
	return studentID, weekID
}

func (l *fakeLedger) GetStudent(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	student, ok := l.students[id]
	if !ok {
		return nil, errors.NewNotFoundError("Student not found")
	}
	return student, nil
}

func (l *fakeLedger) GetDuesWeek(ctx context.Context, id uuid.UUID) (*models.DuesWeek, error) {
	week, ok := l.weeks[id]
	if !ok {
		return nil, errors.NewNotFoundError("Dues week not found")
	}
	return week, nil
}

func (l *fakeLedger) InsertTransaction(ctx context.Context, trx *models.PaymentTransaction) error {
	if l.insertErr != nil {
		return l.insertErr
	}
	l.transactions[trx.OrderID] = trx
	return nil
}

func (l *fakeLedger) GetTransactionByOrderID(ctx context.Context, orderID string) (*models.PaymentTransaction, error) {
	trx, ok := l.transactions[orderID]
	if !ok {
		return nil, errors.NewNotFoundError("Payment transaction not found")
	}
	return trx, nil
}

func (l *fakeLedger) UpdateTransactionStatus(ctx context.Context, orderID string, status models.PaymentStatus) error {
	if trx, ok := l.transactions[orderID]; ok {
		trx.Status = status
	}
	return nil
}

func (l *fakeLedger) MarkPaid(ctx context.Context, studentID, weekID uuid.UUID) (int64, error) {
	key := paidKey(studentID, weekID)
	if !l.statuses[key] {
		return 0, nil
	}
	l.paid[key]++
	return 1, nil
}

func (l *fakeLedger) InsertGatewayEvent(ctx context.Context, event *models.GatewayEvent) error {
	l.events = append(l.events, event)
	return nil
}

func (l *fakeLedger) ListGatewayEvents(ctx context.Context, orderID string, limit int) ([]*models.GatewayEvent, error) {
	return l.events, nil
}

var _ stores.LedgerStore = (*fakeLedger)(nil)

const testServerKey = "SB-Mid-server-test"

func newTestPaymentService(ledger *fakeLedger, gateway *fakeGateway) *PaymentService {
	config := &infrastructures.AppConfig{
		MidtransServerKey: testServerKey,
		BaseURL:           "https://kas.trpl1b.com",
	}
	return NewPaymentService(ledger, gateway, NewChargeBuilder(config.BaseURL), infrastructures.NewValidator(), config)
}

func newCreateRequest(method models.PaymentMethod) *models.PaymentCreateRequest {
	return &models.PaymentCreateRequest{
		StudentID:   "9f8b6c1a-2d3e-4f50-a1b2-c3d4e5f60718",
		WeekID:      "11111111-2222-4333-8444-555555555555",
		Amount:      20000,
		WeekNumber:  3,
		StudentName: "Ada",
		Method:      method,
	}
}

func TestCreatePayment_QRIS(t *testing.T) {
	ledger := newFakeLedger()
	ledger.seedRoster()
	gateway := &fakeGateway{
		chargeResp: &models.MidtransChargeResponse{
			StatusCode: "201",
			Actions: []models.MidtransAction{
				{Name: "generate-qr-code", URL: "https://api.midtrans.com/qr/1"},
			},
		},
	}
	service := newTestPaymentService(ledger, gateway)

	resp, err := service.CreatePayment(context.Background(), newCreateRequest(models.PaymentMethodQRIS))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.OrderID, "KAS-3-9f8b6c1a-"))
	assert.Equal(t, "https://api.midtrans.com/qr/1", resp.QRURL)
	assert.Equal(t, models.PaymentMethodQRIS, resp.Method)

	trx := ledger.transactions[resp.OrderID]
	require.NotNil(t, trx)
	assert.Equal(t, models.PaymentStatusPending, trx.Status)
	assert.Equal(t, int64(20000), trx.Amount)
	assert.Equal(t, "https://api.midtrans.com/qr/1", trx.PaymentURL)
	assert.Equal(t, "9f8b6c1a-2d3e-4f50-a1b2-c3d4e5f60718", trx.StudentID.String())
}

func TestCreatePayment_VAStoredAsBankColonNumber(t *testing.T) {
	ledger := newFakeLedger()
	ledger.seedRoster()
	gateway := &fakeGateway{
		chargeResp: &models.MidtransChargeResponse{
			StatusCode: "201",
			VANumbers:  []models.MidtransVANumber{{Bank: "bca", VANumber: "1234567890"}},
		},
	}
	service := newTestPaymentService(ledger, gateway)

	resp, err := service.CreatePayment(context.Background(), newCreateRequest(models.PaymentMethodVABCA))
	require.NoError(t, err)

	require.NotNil(t, resp.VA)
	assert.Equal(t, "bca", resp.VA.Bank)
	assert.Equal(t, "1234567890", resp.VA.Number)
	assert.Equal(t, "bca:1234567890", ledger.transactions[resp.OrderID].PaymentURL)
}

func TestCreatePayment_UnknownStudentRejectedBeforeCharge(t *testing.T) {
	ledger := newFakeLedger()
	// Roster deliberately empty: the referenced student does not exist.
	gateway := &fakeGateway{}
	service := newTestPaymentService(ledger, gateway)

	_, err := service.CreatePayment(context.Background(), newCreateRequest(models.PaymentMethodQRIS))

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
	assert.Equal(t, "Student not found", appErr.Message)
	assert.Zero(t, gateway.chargeCalls)
	assert.Empty(t, ledger.transactions)
}

func TestCreatePayment_UnknownWeekRejectedBeforeCharge(t *testing.T) {
	ledger := newFakeLedger()
	_, weekID := ledger.seedRoster()
	delete(ledger.weeks, weekID)
	gateway := &fakeGateway{}
	service := newTestPaymentService(ledger, gateway)

	_, err := service.CreatePayment(context.Background(), newCreateRequest(models.PaymentMethodQRIS))

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode)
	assert.Equal(t, "Dues week not found", appErr.Message)
	assert.Zero(t, gateway.chargeCalls)
	assert.Empty(t, ledger.transactions)
}

func TestCreatePayment_UnknownMethodRejectedBeforeGateway(t *testing.T) {
	ledger := newFakeLedger()
	ledger.seedRoster()
	gateway := &fakeGateway{}
	service := newTestPaymentService(ledger, gateway)

	_, err := service.CreatePayment(context.Background(), newCreateRequest(models.PaymentMethod("ovo")))

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.StatusCode)
	assert.Zero(t, gateway.chargeCalls)
	assert.Empty(t, ledger.transactions)
}

func TestCreatePayment_GatewayFailurePersistsNothing(t *testing.T) {
	ledger := newFakeLedger()
	ledger.seedRoster()
	gateway := &fakeGateway{chargeErr: assert.AnError}
	service := newTestPaymentService(ledger, gateway)

	_, err := service.CreatePayment(context.Background(), newCreateRequest(models.PaymentMethodGopay))

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.StatusCode)
	assert.Empty(t, ledger.transactions)
}

func TestCreatePayment_ExtractionFailureStillPersistsRow(t *testing.T) {
	ledger := newFakeLedger()
	ledger.seedRoster()
	// Charge accepted but the response carries no QR URL anywhere.
	gateway := &fakeGateway{
		chargeResp: &models.MidtransChargeResponse{StatusCode: "201"},
	}
	service := newTestPaymentService(ledger, gateway)

	_, err := service.CreatePayment(context.Background(), newCreateRequest(models.PaymentMethodQRIS))

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.StatusCode)

	require.Len(t, ledger.transactions, 1)
	for _, trx := range ledger.transactions {
		assert.Equal(t, models.PaymentStatusPending, trx.Status)
		assert.Empty(t, trx.PaymentURL)
	}
}

func seedPendingTransaction(ledger *fakeLedger) *models.PaymentTransaction {
	studentID, weekID := ledger.seedRoster()
	trx := &models.PaymentTransaction{
		ID:        uuid.New(),
		OrderID:   "KAS-3-9f8b6c1a-m2abc",
		StudentID: studentID,
		WeekID:    weekID,
		Amount:    20000,
		Method:    models.PaymentMethodQRIS,
		Status:    models.PaymentStatusPending,
	}
	ledger.transactions[trx.OrderID] = trx
	return trx
}

func signedNotification(orderID, statusCode, grossAmount string) *models.GatewayNotification {
	return &models.GatewayNotification{
		OrderID:      orderID,
		StatusCode:   statusCode,
		GrossAmount:  grossAmount,
		SignatureKey: NotificationSignature(orderID, statusCode, grossAmount, testServerKey),
	}
}

func TestHandleNotification_SettlementFlipsPaidFlag(t *testing.T) {
	ledger := newFakeLedger()
	trx := seedPendingTransaction(ledger)
	service := newTestPaymentService(ledger, &fakeGateway{})

	err := service.HandleNotification(context.Background(), signedNotification(trx.OrderID, "200", "20000.00"))
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusSettlement, trx.Status)
	assert.Equal(t, 1, ledger.paid[paidKey(trx.StudentID, trx.WeekID)])

	require.Len(t, ledger.events, 1)
	assert.True(t, ledger.events[0].SignatureOK)
	assert.Equal(t, trx.OrderID, ledger.events[0].OrderID)
}

func TestHandleNotification_TamperedSignatureMutatesNothing(t *testing.T) {
	ledger := newFakeLedger()
	trx := seedPendingTransaction(ledger)
	service := newTestPaymentService(ledger, &fakeGateway{})

	notification := signedNotification(trx.OrderID, "200", "20000.00")
	notification.GrossAmount = "1.00"

	err := service.HandleNotification(context.Background(), notification)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.StatusCode)

	assert.Equal(t, models.PaymentStatusPending, trx.Status)
	assert.Empty(t, ledger.paid)

	// The rejected delivery is still recorded for inspection.
	require.Len(t, ledger.events, 1)
	assert.False(t, ledger.events[0].SignatureOK)
}

func TestHandleNotification_DuplicateSettlementIsIdempotent(t *testing.T) {
	ledger := newFakeLedger()
	trx := seedPendingTransaction(ledger)
	service := newTestPaymentService(ledger, &fakeGateway{})

	notification := signedNotification(trx.OrderID, "200", "20000.00")
	require.NoError(t, service.HandleNotification(context.Background(), notification))
	require.NoError(t, service.HandleNotification(context.Background(), notification))

	assert.Equal(t, models.PaymentStatusSettlement, trx.Status)
	assert.Len(t, ledger.events, 2)
}

func TestHandleNotification_NonSuccessCodeMarksFailed(t *testing.T) {
	ledger := newFakeLedger()
	trx := seedPendingTransaction(ledger)
	service := newTestPaymentService(ledger, &fakeGateway{})

	err := service.HandleNotification(context.Background(), signedNotification(trx.OrderID, "407", "20000.00"))
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusFailed, trx.Status)
	assert.Empty(t, ledger.paid)
}

func TestHandleNotification_UnknownOrderIDIsNoOp(t *testing.T) {
	ledger := newFakeLedger()
	service := newTestPaymentService(ledger, &fakeGateway{})

	err := service.HandleNotification(context.Background(), signedNotification("KAS-9-deadbeef-zzz", "200", "5000.00"))
	require.NoError(t, err)

	assert.Empty(t, ledger.paid)
}

func TestHandleNotification_MissingStatusRowStillSucceeds(t *testing.T) {
	ledger := newFakeLedger()
	trx := seedPendingTransaction(ledger)
	// The status row is gone (e.g. roster edited out of band); the settlement
	// is acknowledged and the gap is logged, not surfaced to the provider.
	delete(ledger.statuses, paidKey(trx.StudentID, trx.WeekID))
	service := newTestPaymentService(ledger, &fakeGateway{})

	err := service.HandleNotification(context.Background(), signedNotification(trx.OrderID, "200", "20000.00"))
	require.NoError(t, err)

	assert.Equal(t, models.PaymentStatusSettlement, trx.Status)
	assert.Empty(t, ledger.paid)
}

func TestCheckStatus_SettlementAppliesAndEchoesProviderStatus(t *testing.T) {
	ledger := newFakeLedger()
	trx := seedPendingTransaction(ledger)
	gateway := &fakeGateway{
		statusResp: &models.MidtransStatusResponse{
			StatusCode:        "200",
			TransactionStatus: "settlement",
			FraudStatus:       "accept",
			GrossAmount:       "20000.00",
		},
	}
	service := newTestPaymentService(ledger, gateway)

	resp, err := service.CheckStatus(context.Background(), &models.PaymentStatusRequest{OrderID: trx.OrderID})
	require.NoError(t, err)

	assert.Equal(t, trx.OrderID, gateway.lastStatusArg)
	assert.Equal(t, "settlement", resp.Status)
	assert.Equal(t, "accept", resp.FraudStatus)
	assert.Equal(t, models.PaymentStatusSettlement, trx.Status)
	assert.Equal(t, 1, ledger.paid[paidKey(trx.StudentID, trx.WeekID)])
}

func TestCheckStatus_PendingLeavesPaidFlagAlone(t *testing.T) {
	ledger := newFakeLedger()
	trx := seedPendingTransaction(ledger)
	gateway := &fakeGateway{
		statusResp: &models.MidtransStatusResponse{
			StatusCode:        "200",
			TransactionStatus: "pending",
		},
	}
	service := newTestPaymentService(ledger, gateway)

	resp, err := service.CheckStatus(context.Background(), &models.PaymentStatusRequest{OrderID: trx.OrderID})
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, models.PaymentStatusPending, trx.Status)
	assert.Empty(t, ledger.paid)
}

func TestMapProviderStatus(t *testing.T) {
	tests := []struct {
		provider string
		want     models.PaymentStatus
	}{
		{"settlement", models.PaymentStatusSettlement},
		{"deny", models.PaymentStatusFailed},
		{"cancel", models.PaymentStatusFailed},
		{"expire", models.PaymentStatusFailed},
		{"failure", models.PaymentStatusFailed},
		{"pending", models.PaymentStatusPending},
		{"authorize", models.PaymentStatusPending},
		// Card-only vocabulary; never reaches settlement for this method set.
		{"capture", models.PaymentStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			assert.Equal(t, tt.want, mapProviderStatus(tt.provider))
		})
	}
}
