package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget represents a spending limit for one category over a date range.
//
// Budgets are independent of each other. Multiple budgets may exist for
// the same category, there is no uniqueness constraint.
type Budget struct {
	DefaultModel
	UserID      uuid.UUID       `json:"userId" gorm:"index"`
	Category    string          `json:"category" example:"food"`
	LimitAmount decimal.Decimal `json:"limitAmount" gorm:"type:DECIMAL(20,8)" example:"200"`
	StartDate   time.Time       `json:"startDate" example:"2024-02-01T00:00:00Z"`
	EndDate     time.Time       `json:"endDate" example:"2024-02-29T00:00:00Z"`
}

// BeforeSave validates the budget and normalizes its dates to UTC.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if !b.LimitAmount.IsPositive() {
		return ErrLimitNotPositive
	}

	if b.StartDate.After(b.EndDate) {
		return ErrBudgetDatesInverted
	}

	b.Category = strings.TrimSpace(b.Category)
	b.StartDate = b.StartDate.In(time.UTC)
	b.EndDate = b.EndDate.In(time.UTC)

	return nil
}

// AfterFind sets the timezone of the dates to UTC.
func (b *Budget) AfterFind(_ *gorm.DB) error {
	b.StartDate = b.StartDate.In(time.UTC)
	b.EndDate = b.EndDate.In(time.UTC)
	return nil
}
