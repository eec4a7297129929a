package models_test

import (
	"github.com/finvue/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestProfileBeforeSave() {
	profile := models.Profile{
		MonthlyIncome: decimal.NewFromInt(-1),
	}

	err := profile.BeforeSave(&gorm.DB{})
	assert.Equal(suite.T(), models.ErrMonthlyIncomeNegative, err)
}

func (suite *TestSuiteStandard) TestProfileCurrencyDefault() {
	profile := models.Profile{}

	err := profile.BeforeSave(&gorm.DB{})
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), models.DefaultCurrency, profile.Currency)
}

func (suite *TestSuiteStandard) TestProfileForCreatesOnFirstAccess() {
	user := uuid.New()

	profile, err := models.ProfileFor(user)
	require.Nil(suite.T(), err)
	assert.NotEqual(suite.T(), uuid.Nil, profile.ID)
	assert.Equal(suite.T(), models.DefaultCurrency, profile.Currency)
	assert.True(suite.T(), profile.MonthlyIncome.IsZero())

	// The second access returns the same profile
	again, err := models.ProfileFor(user)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), profile.ID, again.ID)
}

func (suite *TestSuiteStandard) TestProfileUnique() {
	user := uuid.New()

	_, err := models.ProfileFor(user)
	require.Nil(suite.T(), err)

	err = models.DB.Create(&models.Profile{UserID: user}).Error
	assert.ErrorIs(suite.T(), err, models.ErrProfileExists)
}
