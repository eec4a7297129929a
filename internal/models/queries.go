package models

import (
	"github.com/finvue/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// The queries in this file are the read contract the reporting layer has
// with the database: filtered month ranges, aggregate sums that are zero
// for empty sets, and stable iteration orders.

// monthRange scopes a query to transactions that occurred in the month.
func monthRange(db *gorm.DB, month types.Month) *gorm.DB {
	return db.
		Where("transactions.date >= date(?)", month).
		Where("transactions.date < date(?)", month.Next())
}

// MonthTransactions returns all transactions of a user in the given month,
// ordered by date, with the creation time as tie-breaker.
func MonthTransactions(userID uuid.UUID, month types.Month) ([]Transaction, error) {
	var transactions []Transaction
	err := monthRange(DB, month).
		Where(&Transaction{UserID: userID}).
		Order("datetime(transactions.date) ASC, datetime(transactions.created_at) ASC").
		Find(&transactions).
		Error

	return transactions, err
}

// MonthTotal returns the summed amount of all transactions of one kind for
// a user in the given month. A month without transactions sums to zero.
func MonthTotal(userID uuid.UUID, kind TransactionKind, month types.Month) (decimal.Decimal, error) {
	var total decimal.NullDecimal

	err := monthRange(DB.Model(&Transaction{}), month).
		Where(&Transaction{UserID: userID, Kind: kind}).
		Select("SUM(amount)").
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}

	// If no transactions are found, the value is nil
	if !total.Valid {
		return decimal.Zero, nil
	}

	return total.Decimal, nil
}

// CategoryMonthExpense returns the summed expense amount for one category
// of a user in the given month.
func CategoryMonthExpense(userID uuid.UUID, category string, month types.Month) (decimal.Decimal, error) {
	var total decimal.NullDecimal

	err := monthRange(DB.Model(&Transaction{}), month).
		Where(&Transaction{UserID: userID, Kind: Expense}).
		Where("transactions.category = ?", category).
		Select("SUM(amount)").
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}

	if !total.Valid {
		return decimal.Zero, nil
	}

	return total.Decimal, nil
}

// Budgets returns all budgets of a user in their natural order, which is
// the order they were created in. Alerts and the budget usage list in the
// dashboard iterate budgets in this order.
func Budgets(userID uuid.UUID) ([]Budget, error) {
	var budgets []Budget
	err := DB.
		Where(&Budget{UserID: userID}).
		Order("datetime(budgets.created_at) ASC").
		Find(&budgets).
		Error

	return budgets, err
}

// Goals returns all goals of a user in creation order.
func Goals(userID uuid.UUID) ([]Goal, error) {
	var goals []Goal
	err := DB.
		Where(&Goal{UserID: userID}).
		Order("datetime(goals.created_at) ASC").
		Find(&goals).
		Error

	return goals, err
}
