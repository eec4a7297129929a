package report

import (
	"fmt"

	"github.com/finvue/backend/internal/models"
	"github.com/finvue/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	lowSavingsMessage      = "Your savings rate is low this month. Consider reducing discretionary spending."
	unusualSpendingMessage = "Your spending this month is unusually high compared to previous months."
)

// lowSavingsThreshold is the savings rate below which the low savings
// alert fires.
var lowSavingsThreshold = decimal.NewFromFloat(0.10)

// unusualSpendingFactor is the multiple of the trailing average above
// which spending counts as unusually high.
var unusualSpendingFactor = decimal.NewFromFloat(1.3)

// BudgetOveruseAlerts returns one alert for every budget whose category
// accumulated more expenses than its limit in the given month. Budgets are
// checked in store order and budgets sharing a category each produce their
// own alert.
//
// The month window is the calendar month, independent of the start and end
// dates of the budget itself.
func BudgetOveruseAlerts(userID uuid.UUID, month types.Month) ([]string, error) {
	budgets, err := models.Budgets(userID)
	if err != nil {
		return nil, err
	}

	alerts := make([]string, 0)
	for _, budget := range budgets {
		spent, err := models.CategoryMonthExpense(userID, budget.Category, month)
		if err != nil {
			return nil, err
		}

		if spent.GreaterThan(budget.LimitAmount) {
			alerts = append(alerts, fmt.Sprintf("You have exceeded your %s budget for this month.", budget.Category))
		}
	}

	return alerts, nil
}

// LowSavingsAlert checks the savings rate of the month. A month without
// income produces no alert, the division is guarded.
//
// The returned string is empty when there is nothing to alert on.
func LowSavingsAlert(userID uuid.UUID, month types.Month) (string, error) {
	income, err := models.MonthTotal(userID, models.Income, month)
	if err != nil {
		return "", err
	}

	if income.IsZero() {
		return "", nil
	}

	expense, err := models.MonthTotal(userID, models.Expense, month)
	if err != nil {
		return "", err
	}

	rate := income.Sub(expense).Div(income)
	if rate.LessThan(lowSavingsThreshold) {
		return lowSavingsMessage, nil
	}

	return "", nil
}

// UnusualSpendingAlert compares the expense total of the month against the
// average of up to three preceding months. Months without expenses are
// excluded from the average, they do not drag it down as zeroes. With no
// nonzero preceding month there is nothing to compare against and no alert
// is produced.
func UnusualSpendingAlert(userID uuid.UUID, month types.Month) (string, error) {
	current, err := models.MonthTotal(userID, models.Expense, month)
	if err != nil {
		return "", err
	}

	sum := decimal.Zero
	count := int64(0)
	for i := 1; i <= 3; i++ {
		total, err := models.MonthTotal(userID, models.Expense, month.AddDate(0, -i))
		if err != nil {
			return "", err
		}

		if !total.IsZero() {
			sum = sum.Add(total)
			count++
		}
	}

	if count == 0 {
		return "", nil
	}

	average := sum.Div(decimal.NewFromInt(count))
	if current.GreaterThan(average.Mul(unusualSpendingFactor)) {
		return unusualSpendingMessage, nil
	}

	return "", nil
}

// RuleBasedAlerts concatenates all rule based alerts for the user:
// budget overuse alerts first, then the low savings alert, then the
// unusual spending alert.
func RuleBasedAlerts(userID uuid.UUID, month types.Month) ([]string, error) {
	alerts, err := BudgetOveruseAlerts(userID, month)
	if err != nil {
		return nil, err
	}

	lowSavings, err := LowSavingsAlert(userID, month)
	if err != nil {
		return nil, err
	}
	if lowSavings != "" {
		alerts = append(alerts, lowSavings)
	}

	unusual, err := UnusualSpendingAlert(userID, month)
	if err != nil {
		return nil, err
	}
	if unusual != "" {
		alerts = append(alerts, unusual)
	}

	return alerts, nil
}
