package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Validation errors. All of them reject a resource before it is persisted.
var (
	ErrAmountNotPositive     = errors.New("transaction amounts must be larger than zero")
	ErrKindInvalid           = errors.New("transaction kind must be income or expense")
	ErrLimitNotPositive      = errors.New("budget limits must be larger than zero")
	ErrBudgetDatesInverted   = errors.New("the budget start date must not be after its end date")
	ErrTargetNotPositive     = errors.New("goal target amounts must be larger than zero")
	ErrSavedNegative         = errors.New("goal saved amounts must not be negative")
	ErrMonthlyIncomeNegative = errors.New("the monthly income must not be negative")
	ErrProfileExists         = errors.New("a profile for this user already exists")
)
