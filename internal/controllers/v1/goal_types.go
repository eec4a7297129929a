package v1

import (
	"time"

	"github.com/finvue/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Name         string          `json:"name" example:"Emergency fund"`                    // Name of the goal
	TargetAmount decimal.Decimal `json:"targetAmount" example:"5000" minimum:"0.00000001"` // The amount to save towards
	SavedAmount  decimal.Decimal `json:"savedAmount" example:"1250" minimum:"0"`           // The amount saved so far
	Deadline     time.Time       `json:"deadline" example:"2024-12-31T00:00:00Z"`          // Date the goal should be reached by
}

// model returns the database resource for the API representation of the editable fields
func (editable GoalEditable) model(userID uuid.UUID) models.Goal {
	return models.Goal{
		UserID:       userID,
		Name:         editable.Name,
		TargetAmount: editable.TargetAmount,
		SavedAmount:  editable.SavedAmount,
		Deadline:     editable.Deadline,
	}
}

// GoalProgressUpdate is the request body for updating goal progress. The
// saved amount is the only mutable field of a goal.
type GoalProgressUpdate struct {
	SavedAmount decimal.Decimal `json:"savedAmount" example:"1500" minimum:"0"` // The new amount saved so far
}

// Goal is the representation of a Goal in API v1.
type Goal struct {
	models.DefaultModel
	GoalEditable
	Progress decimal.Decimal `json:"progress" example:"25"` // Percentage of the target that is saved, rounded to two decimal places
}

// newGoal returns the API v1 representation of the resource
func newGoal(model models.Goal) Goal {
	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:         model.Name,
			TargetAmount: model.TargetAmount,
			SavedAmount:  model.SavedAmount,
			Deadline:     model.Deadline,
		},
		Progress: model.Progress(),
	}
}

type GoalResponse struct {
	Error *string `json:"error"` // The error, if any occurred
	Data  *Goal   `json:"data"`  // The Goal data
}

type GoalListResponse struct {
	Data  []Goal  `json:"data"`  // List of goals
	Error *string `json:"error"` // The error, if any occurred
}
