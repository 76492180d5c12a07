package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/classkas/kasku-core/internal/app/models"
	"github.com/classkas/kasku-core/internal/infrastructures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMidtransService(server *httptest.Server) *MidtransService {
	client := &infrastructures.MidtransClient{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		AuthHeader: "Basic dGVzdDo=",
	}
	return NewMidtransService(client)
}

func TestMidtransService_Charge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/charge", r.URL.Path)
		assert.Equal(t, "Basic dGVzdDo=", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status_code":"201","transaction_status":"pending","order_id":"KAS-1-abc-xyz","qr_code_url":"https://api.midtrans.com/qr/1"}`))
	}))
	defer server.Close()

	service := newTestMidtransService(server)

	resp, err := service.Charge(context.Background(), &models.MidtransChargeRequest{PaymentType: "qris"})
	require.NoError(t, err)
	assert.Equal(t, "KAS-1-abc-xyz", resp.OrderID)
	assert.Equal(t, "https://api.midtrans.com/qr/1", resp.QRCodeURL)
}

func TestMidtransService_Charge_InBandRejection(t *testing.T) {
	// The Core API reports validation failures with HTTP 200 and an error
	// status code in the body.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status_code":"406","status_message":"duplicate order_id"}`))
	}))
	defer server.Close()

	service := newTestMidtransService(server)

	_, err := service.Charge(context.Background(), &models.MidtransChargeRequest{PaymentType: "qris"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "406")
}

func TestMidtransService_Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/KAS-1-abc-xyz/status", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status_code":"200","transaction_status":"settlement","fraud_status":"accept","gross_amount":"20000.00"}`))
	}))
	defer server.Close()

	service := newTestMidtransService(server)

	resp, err := service.Status(context.Background(), "KAS-1-abc-xyz")
	require.NoError(t, err)
	assert.Equal(t, "settlement", resp.TransactionStatus)
	assert.Equal(t, "accept", resp.FraudStatus)
}

func TestMidtransService_Status_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status_code":"404","status_message":"Transaction doesn't exist."}`))
	}))
	defer server.Close()

	service := newTestMidtransService(server)

	_, err := service.Status(context.Background(), "KAS-1-missing-xyz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Transaction doesn't exist")
}

func TestVerifyNotificationSignature(t *testing.T) {
	serverKey := "SB-Mid-server-test"
	notification := &models.GatewayNotification{
		OrderID:     "KAS-3-9f8b6c1a-m2abc",
		StatusCode:  "200",
		GrossAmount: "20000.00",
	}
	notification.SignatureKey = NotificationSignature(notification.OrderID, notification.StatusCode, notification.GrossAmount, serverKey)

	assert.True(t, VerifyNotificationSignature(notification, serverKey))

	tampered := *notification
	tampered.GrossAmount = "1.00"
	assert.False(t, VerifyNotificationSignature(&tampered, serverKey))

	assert.False(t, VerifyNotificationSignature(notification, "other-key"))
}

func TestNotificationSignature_IsHexSHA512(t *testing.T) {
	sig := NotificationSignature("KAS-1-abc-xyz", "200", "5000.00", "key")
	assert.Len(t, sig, 128)
	assert.Regexp(t, "^[0-9a-f]+$", sig)
}
