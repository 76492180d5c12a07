package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DuesWeek is one billable period. Week numbers are assigned as max+1 and rows
// are never mutated or deleted.
type DuesWeek struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Week      int       `json:"week" gorm:"not null;uniqueIndex"`
	Amount    int64     `json:"amount" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// DuesStatus is the authoritative "has this student paid for this week"
// record, one row per (student, week). It flips to paid either by admin toggle
// or as a side effect of a payment transaction reaching settlement.
type DuesStatus struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;not null;uniqueIndex:idx_dues_student_week"`
	WeekID    uuid.UUID `json:"week_id" gorm:"type:uuid;not null;uniqueIndex:idx_dues_student_week"`
	Paid      bool      `json:"paid" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Student *Student  `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Week    *DuesWeek `json:"-" gorm:"foreignKey:WeekID;constraint:OnDelete:CASCADE"`
}

type CashEntryKind string

const (
	CashEntryKindExpense CashEntryKind = "expense"
)

// CashEntry is an append-only ledger line. Only expenses exist today; income
// is derived from paid dues statuses.
type CashEntry struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Kind        CashEntryKind `json:"kind" gorm:"type:varchar(20);not null"`
	Description string        `json:"description" gorm:"type:text"`
	Amount      int64         `json:"amount" gorm:"not null"`
	CreatedAt   time.Time     `json:"created_at" gorm:"autoCreateTime"`
}

type DuesWeekCreateRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

type DuesStatusUpdateRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	WeekID    string `json:"week_id" validate:"required,uuid"`
	Paid      bool   `json:"paid"`
}

type CashEntryCreateRequest struct {
	Description string `json:"description" validate:"required,max=500"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
}

type CashSummary struct {
	TotalCollected decimal.Decimal `json:"total_collected"`
	TotalExpense   decimal.Decimal `json:"total_expense"`
	Balance        decimal.Decimal `json:"balance"`
}
