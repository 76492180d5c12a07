package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentMethodQRIS      PaymentMethod = "qris"
	PaymentMethodVABCA     PaymentMethod = "va_bca"
	PaymentMethodVAPermata PaymentMethod = "va_permata"
	PaymentMethodVABNI     PaymentMethod = "va_bni"
	PaymentMethodVABRI     PaymentMethod = "va_bri"
	PaymentMethodGopay     PaymentMethod = "gopay"
	PaymentMethodShopeePay PaymentMethod = "shopeepay"
	PaymentMethodDana      PaymentMethod = "dana"
)

// BankCode returns the bank identifier for virtual account methods, and false
// for every other method.
func (m PaymentMethod) BankCode() (string, bool) {
	switch m {
	case PaymentMethodVABCA:
		return "bca", true
	case PaymentMethodVAPermata:
		return "permata", true
	case PaymentMethodVABNI:
		return "bni", true
	case PaymentMethodVABRI:
		return "bri", true
	default:
		return "", false
	}
}

// IsEWallet reports whether the method completes through a provider deep link.
func (m PaymentMethod) IsEWallet() bool {
	switch m {
	case PaymentMethodGopay, PaymentMethodShopeePay, PaymentMethodDana:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusSettlement PaymentStatus = "settlement"
	PaymentStatusFailed     PaymentStatus = "failed"
)

// PaymentTransaction records one charge attempt against the provider. Rows are
// never deleted; retries for the same (student, week) create new rows with
// fresh order ids, and reconciliation always keys on order_id.
type PaymentTransaction struct {
	ID         uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID    string        `json:"order_id" gorm:"type:varchar(50);not null;uniqueIndex"`
	StudentID  uuid.UUID     `json:"student_id" gorm:"type:uuid;not null;index"`
	WeekID     uuid.UUID     `json:"week_id" gorm:"type:uuid;not null;index"`
	Amount     int64         `json:"amount" gorm:"not null"`
	Method     PaymentMethod `json:"method" gorm:"type:varchar(20);not null"`
	Status     PaymentStatus `json:"status" gorm:"type:varchar(20);not null"`
	PaymentURL string        `json:"payment_url" gorm:"type:text"`
	CreatedAt  time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time     `json:"updated_at" gorm:"autoUpdateTime"`

	Student *Student  `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:RESTRICT"`
	Week    *DuesWeek `json:"-" gorm:"foreignKey:WeekID;constraint:OnDelete:RESTRICT"`
}

type PaymentCreateRequest struct {
	StudentID   string        `json:"student_id" validate:"required,uuid"`
	WeekID      string        `json:"week_id" validate:"required,uuid"`
	Amount      int64         `json:"amount" validate:"required,gt=0"`
	WeekNumber  int           `json:"week_number" validate:"required,gt=0"`
	StudentName string        `json:"student_name" validate:"required,max=255"`
	Method      PaymentMethod `json:"method" validate:"required"`
}

type VirtualAccount struct {
	Bank   string `json:"bank"`
	Number string `json:"number"`
}

// Presentation is the method-specific artifact shown to the payer: exactly one
// of the fields is set.
type Presentation struct {
	QRURL       string          `json:"qr_url,omitempty"`
	VA          *VirtualAccount `json:"va,omitempty"`
	DeeplinkURL string          `json:"deeplink_url,omitempty"`
}

// URLValue flattens the presentation to the single string stored on the
// transaction row. Virtual accounts are stored as "bank:number".
func (p Presentation) URLValue() string {
	switch {
	case p.QRURL != "":
		return p.QRURL
	case p.DeeplinkURL != "":
		return p.DeeplinkURL
	case p.VA != nil:
		return p.VA.Bank + ":" + p.VA.Number
	default:
		return ""
	}
}

type PaymentCreateResponse struct {
	Method      PaymentMethod   `json:"method"`
	OrderID     string          `json:"order_id"`
	PaymentID   uuid.UUID       `json:"payment_id"`
	QRURL       string          `json:"qr_url,omitempty"`
	VA          *VirtualAccount `json:"va,omitempty"`
	DeeplinkURL string          `json:"deeplink_url,omitempty"`
}

type PaymentStatusRequest struct {
	OrderID string `json:"order_id" validate:"required,max=50"`
}

// PaymentStatusResponse echoes the provider's status vocabulary for display;
// only "settlement" has local side effects.
type PaymentStatusResponse struct {
	Status      string `json:"status"`
	FraudStatus string `json:"fraud_status,omitempty"`
	GrossAmount string `json:"gross_amount,omitempty"`
}

// GatewayNotification is the asynchronous webhook body pushed by the provider.
type GatewayNotification struct {
	OrderID      string `json:"order_id" validate:"required,max=50"`
	StatusCode   string `json:"status_code" validate:"required"`
	GrossAmount  string `json:"gross_amount" validate:"required"`
	SignatureKey string `json:"signature_key" validate:"required"`
}
