package report

import (
	"fmt"

	"github.com/finvue/backend/internal/models"
	"github.com/finvue/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// trendThreshold is the percent change below which month over month
// expense movement is considered noise.
var trendThreshold = decimal.NewFromInt(10)

var oneHundred = decimal.NewFromInt(100)

// SpendingTrendInsight compares the expense total of the month with the
// immediately preceding month. A preceding month without expenses produces
// no insight, the division is guarded. Changes within the threshold in
// either direction produce no insight.
func SpendingTrendInsight(userID uuid.UUID, month types.Month) (string, error) {
	current, err := models.MonthTotal(userID, models.Expense, month)
	if err != nil {
		return "", err
	}

	previous, err := models.MonthTotal(userID, models.Expense, month.Previous())
	if err != nil {
		return "", err
	}

	if previous.IsZero() {
		return "", nil
	}

	change := current.Sub(previous).Div(previous).Mul(oneHundred)

	if change.GreaterThan(trendThreshold) {
		return fmt.Sprintf("Your expenses increased by %s%% compared to last month", change.StringFixed(1)), nil
	}

	if change.LessThan(trendThreshold.Neg()) {
		return fmt.Sprintf("Good job! Your expenses decreased by %s%% compared to last month", change.Abs().StringFixed(1)), nil
	}

	return "", nil
}

// TopCategoryInsight names the category with the highest expense sum in
// the given transactions. Ties are broken by the category seen first. A
// set without expense transactions produces no insight.
func TopCategoryInsight(transactions []models.Transaction) string {
	categories, sums := expenseByCategory(transactions)
	if len(categories) == 0 {
		return ""
	}

	top := categories[0]
	for _, category := range categories[1:] {
		if sums[category].GreaterThan(sums[top]) {
			top = category
		}
	}

	return fmt.Sprintf("%s is your highest spending category", top)
}

// Insights concatenates the insights for the user: the spending trend
// first, then the top spending category.
func Insights(userID uuid.UUID, month types.Month, transactions []models.Transaction) ([]string, error) {
	insights := make([]string, 0)

	trend, err := SpendingTrendInsight(userID, month)
	if err != nil {
		return nil, err
	}
	if trend != "" {
		insights = append(insights, trend)
	}

	top := TopCategoryInsight(transactions)
	if top != "" {
		insights = append(insights, top)
	}

	return insights, nil
}
