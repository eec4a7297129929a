package models_test

import (
	"github.com/finvue/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestGoalBeforeSave() {
	tests := []struct {
		name   string
		target decimal.Decimal
		saved  decimal.Decimal
		err    error
	}{
		{"valid", decimal.NewFromInt(5000), decimal.NewFromInt(1250), nil},
		{"zero saved", decimal.NewFromInt(5000), decimal.Zero, nil},
		{"zero target", decimal.Zero, decimal.Zero, models.ErrTargetNotPositive},
		{"negative target", decimal.NewFromInt(-100), decimal.Zero, models.ErrTargetNotPositive},
		{"negative saved", decimal.NewFromInt(5000), decimal.NewFromInt(-1), models.ErrSavedNegative},
	}

	for _, tt := range tests {
		goal := models.Goal{
			TargetAmount: tt.target,
			SavedAmount:  tt.saved,
		}

		err := goal.BeforeSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err, tt.name)
	}
}

func (suite *TestSuiteStandard) TestGoalProgress() {
	tests := []struct {
		name     string
		target   decimal.Decimal
		saved    decimal.Decimal
		progress string
	}{
		{"quarter", decimal.NewFromInt(5000), decimal.NewFromInt(1250), "25"},
		{"nothing saved", decimal.NewFromInt(5000), decimal.Zero, "0"},
		{"rounded to two places", decimal.NewFromInt(3), decimal.NewFromInt(1), "33.33"},
		{"overfunded", decimal.NewFromInt(100), decimal.NewFromInt(150), "150"},
		{"guarded zero target", decimal.Zero, decimal.NewFromInt(10), "0"},
	}

	for _, tt := range tests {
		goal := models.Goal{
			TargetAmount: tt.target,
			SavedAmount:  tt.saved,
		}

		assert.True(suite.T(), goal.Progress().Equal(decimal.RequireFromString(tt.progress)), "%s: progress is %s", tt.name, goal.Progress())
	}
}

func (suite *TestSuiteStandard) TestGoalUpdateSavedAmount() {
	goal := suite.createTestGoal(models.Goal{
		UserID:       uuid.New(),
		Name:         "Emergency fund",
		TargetAmount: decimal.NewFromInt(5000),
		SavedAmount:  decimal.NewFromInt(1250),
	})

	goal.SavedAmount = decimal.NewFromInt(1500)
	err := models.DB.Save(&goal).Error
	assert.Nil(suite.T(), err)

	var reloaded models.Goal
	err = models.DB.First(&reloaded, goal.ID).Error
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), reloaded.SavedAmount.Equal(decimal.NewFromInt(1500)))
}
