// Package report computes financial summaries, alerts and insights for a
// single user and a reference month. All functions are free of side
// effects, they only read from the record store. Results are fully
// recomputable at any time, caching them is an optimization that happens
// in the facade package.
package report

import (
	"github.com/finvue/backend/internal/models"
	"github.com/finvue/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetStatus describes whether spending stayed within a budget.
type BudgetStatus string

const (
	StatusOK       BudgetStatus = "ok"
	StatusExceeded BudgetStatus = "exceeded"
)

// DashboardSummary is the aggregated dashboard for one user and month.
type DashboardSummary struct {
	Period     Period              `json:"period"`
	Totals     Totals              `json:"totals"`
	Categories []CategoryExpense   `json:"categories"`
	Budgets    []BudgetUsageEntry  `json:"budgets"`
	Goals      []GoalProgressEntry `json:"goals"`
	Insights   []string            `json:"insights"`
}

// Period identifies the month a summary covers and the currency of the
// owning user's profile.
type Period struct {
	Month    types.Month `json:"month" example:"2024-02"`
	Currency string      `json:"currency" example:"INR"`
}

// Totals are the income, expense and savings sums of one month.
// Savings is income minus expense and may be negative.
type Totals struct {
	Income  decimal.Decimal `json:"income" example:"1000"`
	Expense decimal.Decimal `json:"expense" example:"950"`
	Savings decimal.Decimal `json:"savings" example:"50"`
}

// CategoryExpense is the summed expense amount for one category.
type CategoryExpense struct {
	Category string          `json:"category" example:"food"`
	Expense  decimal.Decimal `json:"expense" example:"250"`
}

// BudgetUsageEntry compares one budget against actual spending.
type BudgetUsageEntry struct {
	Category string          `json:"category" example:"food"`
	Limit    decimal.Decimal `json:"limit" example:"200"`
	Spent    decimal.Decimal `json:"spent" example:"250"`
	Status   BudgetStatus    `json:"status" example:"exceeded"`
}

// GoalProgressEntry is the derived progress of one savings goal.
type GoalProgressEntry struct {
	Name            string          `json:"name" example:"Emergency fund"`
	Target          decimal.Decimal `json:"target" example:"5000"`
	Saved           decimal.Decimal `json:"saved" example:"1250"`
	ProgressPercent decimal.Decimal `json:"progressPercent" example:"25"`
}

// AlertsResult is the ordered list of alerts for one user.
type AlertsResult struct {
	Alerts []string `json:"alerts"`
}

// CalcTotals sums the given transactions into income, expense and savings.
// The result does not depend on the order of the transactions.
func CalcTotals(transactions []models.Transaction) Totals {
	income := decimal.Zero
	expense := decimal.Zero

	for _, t := range transactions {
		switch t.Kind {
		case models.Income:
			income = income.Add(t.Amount)
		case models.Expense:
			expense = expense.Add(t.Amount)
		}
	}

	return Totals{
		Income:  income,
		Expense: expense,
		Savings: income.Sub(expense),
	}
}

// expenseByCategory sums expense amounts per category. The returned slice
// of category names preserves the order in which categories first appear.
func expenseByCategory(transactions []models.Transaction) ([]string, map[string]decimal.Decimal) {
	categories := make([]string, 0)
	sums := make(map[string]decimal.Decimal)

	for _, t := range transactions {
		if t.Kind != models.Expense {
			continue
		}

		sum, ok := sums[t.Category]
		if !ok {
			categories = append(categories, t.Category)
			sum = decimal.Zero
		}
		sums[t.Category] = sum.Add(t.Amount)
	}

	return categories, sums
}

// CategoryBreakdown groups the expenses of the given transactions by
// category. Categories without expense transactions do not appear.
func CategoryBreakdown(transactions []models.Transaction) []CategoryExpense {
	categories, sums := expenseByCategory(transactions)

	breakdown := make([]CategoryExpense, 0, len(categories))
	for _, category := range categories {
		breakdown = append(breakdown, CategoryExpense{
			Category: category,
			Expense:  sums[category],
		})
	}

	return breakdown
}

// BudgetUsage compares every budget of the user against the spending in
// the given transaction set. Budgets are reported in store order, a budget
// whose category has no expenses reports zero spending.
func BudgetUsage(userID uuid.UUID, transactions []models.Transaction) ([]BudgetUsageEntry, error) {
	budgets, err := models.Budgets(userID)
	if err != nil {
		return nil, err
	}

	_, sums := expenseByCategory(transactions)

	usage := make([]BudgetUsageEntry, 0, len(budgets))
	for _, budget := range budgets {
		spent, ok := sums[budget.Category]
		if !ok {
			spent = decimal.Zero
		}

		status := StatusOK
		if spent.GreaterThan(budget.LimitAmount) {
			status = StatusExceeded
		}

		usage = append(usage, BudgetUsageEntry{
			Category: budget.Category,
			Limit:    budget.LimitAmount,
			Spent:    spent,
			Status:   status,
		})
	}

	return usage, nil
}

// GoalProgress derives the progress of all goals of the user.
func GoalProgress(userID uuid.UUID) ([]GoalProgressEntry, error) {
	goals, err := models.Goals(userID)
	if err != nil {
		return nil, err
	}

	progress := make([]GoalProgressEntry, 0, len(goals))
	for _, goal := range goals {
		progress = append(progress, GoalProgressEntry{
			Name:            goal.Name,
			Target:          goal.TargetAmount,
			Saved:           goal.SavedAmount,
			ProgressPercent: goal.Progress(),
		})
	}

	return progress, nil
}

// Summary assembles the dashboard for one user and month. The profile is
// created lazily on first access.
func Summary(userID uuid.UUID, month types.Month) (DashboardSummary, error) {
	profile, err := models.ProfileFor(userID)
	if err != nil {
		return DashboardSummary{}, err
	}

	transactions, err := models.MonthTransactions(userID, month)
	if err != nil {
		return DashboardSummary{}, err
	}

	budgets, err := BudgetUsage(userID, transactions)
	if err != nil {
		return DashboardSummary{}, err
	}

	goals, err := GoalProgress(userID)
	if err != nil {
		return DashboardSummary{}, err
	}

	insights, err := Insights(userID, month, transactions)
	if err != nil {
		return DashboardSummary{}, err
	}

	return DashboardSummary{
		Period: Period{
			Month:    month,
			Currency: profile.Currency,
		},
		Totals:     CalcTotals(transactions),
		Categories: CategoryBreakdown(transactions),
		Budgets:    budgets,
		Goals:      goals,
		Insights:   insights,
	}, nil
}
