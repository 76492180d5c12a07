package models

// Request and response shapes for the Midtrans Core API (v2 charge and status
// endpoints). Only the fields this application reads or writes are modeled.

type MidtransTransactionDetails struct {
	OrderID     string `json:"order_id"`
	GrossAmount int64  `json:"gross_amount"`
}

type MidtransItemDetail struct {
	ID       string `json:"id"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

type MidtransCustomerDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type MidtransBankTransfer struct {
	Bank string `json:"bank"`
}

type MidtransGopay struct {
	EnableCallback bool   `json:"enable_callback"`
	CallbackURL    string `json:"callback_url"`
}

type MidtransShopeePay struct {
	CallbackURL string `json:"callback_url"`
}

type MidtransDana struct {
	CallbackURL string `json:"callback_url"`
}

type MidtransCallbacks struct {
	Finish  string `json:"finish,omitempty"`
	Pending string `json:"pending,omitempty"`
	Error   string `json:"error,omitempty"`
}

// MidtransChargeRequest is the /v2/charge body. Exactly one method-specific
// block is set, matching PaymentType.
type MidtransChargeRequest struct {
	PaymentType        string                     `json:"payment_type"`
	TransactionDetails MidtransTransactionDetails `json:"transaction_details"`
	ItemDetails        []MidtransItemDetail       `json:"item_details,omitempty"`
	CustomerDetails    *MidtransCustomerDetails   `json:"customer_details,omitempty"`
	BankTransfer       *MidtransBankTransfer      `json:"bank_transfer,omitempty"`
	Gopay              *MidtransGopay             `json:"gopay,omitempty"`
	ShopeePay          *MidtransShopeePay         `json:"shopeepay,omitempty"`
	Dana               *MidtransDana              `json:"dana,omitempty"`
	Callbacks          *MidtransCallbacks         `json:"callbacks,omitempty"`
}

type MidtransAction struct {
	Name   string `json:"name"`
	Method string `json:"method"`
	URL    string `json:"url"`
}

type MidtransVANumber struct {
	Bank     string `json:"bank"`
	VANumber string `json:"va_number"`
}

// MidtransChargeResponse covers the charge response variants across QRIS, bank
// transfer and e-wallet payment types.
type MidtransChargeResponse struct {
	StatusCode        string             `json:"status_code"`
	StatusMessage     string             `json:"status_message"`
	TransactionID     string             `json:"transaction_id"`
	OrderID           string             `json:"order_id"`
	GrossAmount       string             `json:"gross_amount"`
	PaymentType       string             `json:"payment_type"`
	TransactionTime   string             `json:"transaction_time"`
	TransactionStatus string             `json:"transaction_status"`
	FraudStatus       string             `json:"fraud_status,omitempty"`
	Actions           []MidtransAction   `json:"actions,omitempty"`
	QRCodeURL         string             `json:"qr_code_url,omitempty"`
	DeeplinkURL       string             `json:"deeplink_url,omitempty"`
	PermataVANumber   string             `json:"permata_va_number,omitempty"`
	VANumbers         []MidtransVANumber `json:"va_numbers,omitempty"`
	ExpiryTime        string             `json:"expiry_time,omitempty"`
}

type MidtransStatusResponse struct {
	StatusCode        string `json:"status_code"`
	StatusMessage     string `json:"status_message"`
	TransactionID     string `json:"transaction_id"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status,omitempty"`
	SignatureKey      string `json:"signature_key,omitempty"`
}

type MidtransErrorResponse struct {
	StatusCode    string   `json:"status_code"`
	StatusMessage string   `json:"status_message"`
	ValidationMsg []string `json:"validation_messages,omitempty"`
}
