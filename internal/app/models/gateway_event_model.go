package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GatewayEvent is an append-only record of every webhook delivery, including
// rejected ones, kept as an audit trail for manual reconciliation.
type GatewayEvent struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID     string          `json:"order_id" gorm:"type:varchar(50);not null;index"`
	StatusCode  string          `json:"status_code" gorm:"type:varchar(10)"`
	SignatureOK bool            `json:"signature_ok" gorm:"not null"`
	Payload     json.RawMessage `json:"payload" gorm:"type:jsonb"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`
}
