package services

import (
	"fmt"
	"strings"

	"github.com/classkas/kasku-core/internal/app/errors"
	"github.com/classkas/kasku-core/internal/app/models"
)

// ChargeBuilder maps a chosen payment method to the provider charge request
// and extracts the presentation value from the provider response. It never
// touches the network, so it can be exercised against recorded responses.
type ChargeBuilder struct {
	baseURL string
}

func NewChargeBuilder(baseURL string) *ChargeBuilder {
	return &ChargeBuilder{baseURL: baseURL}
}

// Build produces the method-specific charge request. Unknown methods are
// rejected here, before any gateway call.
func (b *ChargeBuilder) Build(method models.PaymentMethod, orderID string, amount int64, studentName string, weekNumber int) (*models.MidtransChargeRequest, error) {
	req := &models.MidtransChargeRequest{
		TransactionDetails: models.MidtransTransactionDetails{
			OrderID:     orderID,
			GrossAmount: amount,
		},
		ItemDetails: []models.MidtransItemDetail{
			{
				ID:       fmt.Sprintf("kas-minggu-%d", weekNumber),
				Price:    amount,
				Quantity: 1,
				Name:     fmt.Sprintf("Pembayaran Kas Minggu %d", weekNumber),
				Category: "Pembayaran Kas",
			},
		},
		CustomerDetails: b.customerDetails(studentName),
		Callbacks: &models.MidtransCallbacks{
			Finish:  b.baseURL + "/payment/success",
			Pending: b.baseURL + "/payment/pending",
			Error:   b.baseURL + "/payment/error",
		},
	}

	switch method {
	case models.PaymentMethodQRIS:
		req.PaymentType = "qris"
	case models.PaymentMethodVABCA, models.PaymentMethodVAPermata, models.PaymentMethodVABNI, models.PaymentMethodVABRI:
		bank, _ := method.BankCode()
		req.PaymentType = "bank_transfer"
		req.BankTransfer = &models.MidtransBankTransfer{Bank: bank}
	case models.PaymentMethodGopay:
		req.PaymentType = "gopay"
		req.Gopay = &models.MidtransGopay{
			EnableCallback: true,
			CallbackURL:    b.baseURL + "/payment/success",
		}
	case models.PaymentMethodShopeePay:
		req.PaymentType = "shopeepay"
		req.ShopeePay = &models.MidtransShopeePay{
			CallbackURL: b.baseURL + "/payment/success",
		}
	case models.PaymentMethodDana:
		req.PaymentType = "dana"
		req.Dana = &models.MidtransDana{
			CallbackURL: b.baseURL + "/payment/success",
		}
	default:
		return nil, errors.NewUnsupportedMethodError(string(method))
	}

	return req, nil
}

// ExtractPresentation pulls the value the payer needs out of the charge
// response: a QR image URL, a virtual account number, or an e-wallet deep
// link. A charge the provider accepted without any recognized field is an
// extraction error, not a gateway error.
func (b *ChargeBuilder) ExtractPresentation(method models.PaymentMethod, resp *models.MidtransChargeResponse) (models.Presentation, error) {
	switch {
	case method == models.PaymentMethodQRIS:
		if url := findAction(resp.Actions, "generate-qr-code", "qr-code"); url != "" {
			return models.Presentation{QRURL: url}, nil
		}
		if resp.QRCodeURL != "" {
			return models.Presentation{QRURL: resp.QRCodeURL}, nil
		}
		return models.Presentation{}, errors.NewExtractionError("Failed to create QR payment", "QR URL not found in provider response")

	case method.IsEWallet():
		if url := findAction(resp.Actions, "deeplink-redirect"); url != "" {
			return models.Presentation{DeeplinkURL: url}, nil
		}
		if resp.DeeplinkURL != "" {
			return models.Presentation{DeeplinkURL: resp.DeeplinkURL}, nil
		}
		return models.Presentation{}, errors.NewExtractionError("Failed to create e-wallet payment", "Deeplink URL not found in provider response")

	default:
		bank, ok := method.BankCode()
		if !ok {
			return models.Presentation{}, errors.NewUnsupportedMethodError(string(method))
		}
		// Permata reports a dedicated field, the other banks a list.
		if resp.PermataVANumber != "" {
			return models.Presentation{VA: &models.VirtualAccount{Bank: "permata", Number: resp.PermataVANumber}}, nil
		}
		if len(resp.VANumbers) > 0 {
			found := resp.VANumbers[0]
			if found.Bank != "" {
				bank = strings.ToLower(found.Bank)
			}
			return models.Presentation{VA: &models.VirtualAccount{Bank: bank, Number: found.VANumber}}, nil
		}
		return models.Presentation{}, errors.NewExtractionError("Failed to create VA payment", "VA number not found in provider response")
	}
}

// customerDetails synthesizes the customer block the provider requires from
// the only identity the class app has: the student's display name.
func (b *ChargeBuilder) customerDetails(studentName string) *models.MidtransCustomerDetails {
	local := strings.ToLower(strings.Join(strings.Fields(studentName), ""))
	return &models.MidtransCustomerDetails{
		FirstName: studentName,
		LastName:  "",
		Email:     local + "@trpl1b.com",
		Phone:     "08123456789",
	}
}

func findAction(actions []models.MidtransAction, names ...string) string {
	for _, action := range actions {
		for _, name := range names {
			if action.Name == name {
				return action.URL
			}
		}
	}
	return ""
}
