package services

import (
	"bytes"
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/classkas/kasku-core/internal/app/models"
	"github.com/classkas/kasku-core/internal/infrastructures"
)

// Gateway is the payment provider surface the reconciliation flow depends on.
type Gateway interface {
	Charge(ctx context.Context, req *models.MidtransChargeRequest) (*models.MidtransChargeResponse, error)
	Status(ctx context.Context, orderID string) (*models.MidtransStatusResponse, error)
}

type MidtransService struct {
	client *infrastructures.MidtransClient
}

func NewMidtransService(midtransClient *infrastructures.MidtransClient) *MidtransService {
	return &MidtransService{
		client: midtransClient,
	}
}

// Charge creates a transaction on the Core API v2 charge endpoint.
func (s *MidtransService) Charge(ctx context.Context, chargeReq *models.MidtransChargeRequest) (*models.MidtransChargeResponse, error) {
	body, err := s.makeRequest(ctx, http.MethodPost, "/v2/charge", chargeReq)
	if err != nil {
		return nil, err
	}

	var chargeResp models.MidtransChargeResponse
	if err := json.Unmarshal(body, &chargeResp); err != nil {
		return nil, fmt.Errorf("failed to parse charge response: %w", err)
	}

	// The API reports errors in-band with a 2xx-ish body status code scheme:
	// 200/201 mean the charge was accepted.
	if chargeResp.StatusCode != "200" && chargeResp.StatusCode != "201" {
		return nil, fmt.Errorf("midtrans charge rejected: %s %s", chargeResp.StatusCode, chargeResp.StatusMessage)
	}

	return &chargeResp, nil
}

// Status looks up a transaction by the order id shared at charge time.
func (s *MidtransService) Status(ctx context.Context, orderID string) (*models.MidtransStatusResponse, error) {
	endpoint := fmt.Sprintf("/v2/%s/status", orderID)
	body, err := s.makeRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var statusResp models.MidtransStatusResponse
	if err := json.Unmarshal(body, &statusResp); err != nil {
		return nil, fmt.Errorf("failed to parse status response: %w", err)
	}

	if statusResp.StatusCode != "200" {
		return nil, fmt.Errorf("midtrans status lookup failed: %s %s", statusResp.StatusCode, statusResp.StatusMessage)
	}

	return &statusResp, nil
}

func (s *MidtransService) makeRequest(ctx context.Context, method, endpoint string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	url := s.client.GetFullURL(endpoint)
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", s.client.GetAuthHeader())
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errorResp models.MidtransErrorResponse
		if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.StatusMessage != "" {
			return nil, fmt.Errorf("midtrans API error: %s", errorResp.StatusMessage)
		}
		return nil, fmt.Errorf("midtrans API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// NotificationSignature computes the webhook signature:
// sha512(order_id + status_code + gross_amount + serverKey), hex encoded.
func NotificationSignature(orderID, statusCode, grossAmount, serverKey string) string {
	raw := orderID + statusCode + grossAmount + serverKey
	sum := sha512.Sum512([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// VerifyNotificationSignature compares the received signature against the
// recomputed one in constant time.
func VerifyNotificationSignature(notification *models.GatewayNotification, serverKey string) bool {
	expected := NotificationSignature(notification.OrderID, notification.StatusCode, notification.GrossAmount, serverKey)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(notification.SignatureKey)) == 1
}
