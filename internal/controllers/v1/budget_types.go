package v1

import (
	"time"

	"github.com/finvue/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	Category    string          `json:"category" example:"food"`                     // Category the limit applies to
	LimitAmount decimal.Decimal `json:"limitAmount" example:"200" minimum:"0.00000001"` // The spending limit
	StartDate   time.Time       `json:"startDate" example:"2024-02-01T00:00:00Z"`    // First day the budget applies to
	EndDate     time.Time       `json:"endDate" example:"2024-02-29T00:00:00Z"`      // Last day the budget applies to
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		UserID:      userID,
		Category:    editable.Category,
		LimitAmount: editable.LimitAmount,
		StartDate:   editable.StartDate,
		EndDate:     editable.EndDate,
	}
}

// Budget is the representation of a Budget in API v1.
type Budget struct {
	models.DefaultModel
	BudgetEditable
}

// newBudget returns the API v1 representation of the resource
func newBudget(model models.Budget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Category:    model.Category,
			LimitAmount: model.LimitAmount,
			StartDate:   model.StartDate,
			EndDate:     model.EndDate,
		},
	}
}

type BudgetResponse struct {
	Error *string `json:"error"` // The error, if any occurred
	Data  *Budget `json:"data"`  // The Budget data
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`  // List of budgets
	Error *string  `json:"error"` // The error, if any occurred
}
