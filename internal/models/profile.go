package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultCurrency is used for profiles that do not set a currency.
const DefaultCurrency = "INR"

// Profile stores user preferences that the dashboard needs. There is
// exactly one profile per user.
type Profile struct {
	DefaultModel
	UserID        uuid.UUID       `json:"userId" gorm:"uniqueIndex"`
	MonthlyIncome decimal.Decimal `json:"monthlyIncome" gorm:"type:DECIMAL(20,8)" example:"50000"`
	Currency      string          `json:"currency" example:"INR"`
}

// BeforeSave validates the profile and applies the currency default.
func (p *Profile) BeforeSave(_ *gorm.DB) error {
	if p.MonthlyIncome.IsNegative() {
		return ErrMonthlyIncomeNegative
	}

	p.Currency = strings.TrimSpace(p.Currency)
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}

	return nil
}

// ProfileFor returns the profile of a user, creating it with defaults on
// first access.
func ProfileFor(userID uuid.UUID) (Profile, error) {
	var profile Profile
	err := DB.Where(&Profile{UserID: userID}).First(&profile).Error
	if err == nil {
		return profile, nil
	}

	if !errors.Is(err, ErrResourceNotFound) {
		return Profile{}, err
	}

	profile = Profile{UserID: userID, Currency: DefaultCurrency}
	err = DB.Create(&profile).Error
	return profile, err
}
