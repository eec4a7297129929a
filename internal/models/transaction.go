package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionKind classifies a transaction as money coming in or going out.
type TransactionKind string

const (
	Income  TransactionKind = "income"
	Expense TransactionKind = "expense"
)

// Transaction represents a single financial event for a user.
//
// Transactions are immutable once created, there is no update path
// through the API.
type Transaction struct {
	DefaultModel
	UserID   uuid.UUID       `json:"userId" gorm:"index"`
	Kind     TransactionKind `json:"kind" example:"expense"`
	Category string          `json:"category" example:"food"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.03"`
	Date     time.Time       `json:"date" example:"2024-02-10T00:00:00Z"` // Date the transaction occurred, can differ from createdAt
	Note     string          `json:"note,omitempty" example:"Lunch"`
}

// BeforeSave validates the transaction and normalizes the date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Kind != Income && t.Kind != Expense {
		return ErrKindInvalid
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	t.Category = strings.TrimSpace(t.Category)
	t.Note = strings.TrimSpace(t.Note)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// AfterFind sets the timezone of the date to UTC.
func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return nil
}
