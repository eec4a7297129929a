package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal represents a savings goal. The saved amount is updated explicitly,
// progress is always derived from it.
type Goal struct {
	DefaultModel
	UserID       uuid.UUID       `json:"userId" gorm:"index"`
	Name         string          `json:"name" example:"Emergency fund"`
	TargetAmount decimal.Decimal `json:"targetAmount" gorm:"type:DECIMAL(20,8)" example:"5000"`
	SavedAmount  decimal.Decimal `json:"savedAmount" gorm:"type:DECIMAL(20,8)" example:"1250"`
	Deadline     time.Time       `json:"deadline" example:"2024-12-31T00:00:00Z"`
}

// BeforeSave validates the goal.
func (g *Goal) BeforeSave(_ *gorm.DB) error {
	if !g.TargetAmount.IsPositive() {
		return ErrTargetNotPositive
	}

	if g.SavedAmount.IsNegative() {
		return ErrSavedNegative
	}

	g.Name = strings.TrimSpace(g.Name)
	g.Deadline = g.Deadline.In(time.UTC)

	return nil
}

// AfterFind sets the timezone of the deadline to UTC.
func (g *Goal) AfterFind(_ *gorm.DB) error {
	g.Deadline = g.Deadline.In(time.UTC)
	return nil
}

// Progress returns the goal progress in percent, rounded to two decimal
// places. A goal without a positive target has a progress of zero, the
// division is guarded.
func (g Goal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}

	return g.SavedAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Round(2)
}
