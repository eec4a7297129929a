package v1

import (
	"time"

	"github.com/finvue/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Kind     models.TransactionKind `json:"kind" example:"expense"`                                // Whether the transaction is income or expense
	Category string                 `json:"category" example:"food"`                               // User-defined category
	Amount   decimal.Decimal        `json:"amount" example:"14.03" minimum:"0.00000001"`           // The amount for the transaction
	Date     time.Time              `json:"date" example:"2024-02-10T00:00:00Z"`                   // Date the transaction occurred. Defaults to the creation time
	Note     string                 `json:"note" example:"Lunch with the team" default:""`         // A note
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:   userID,
		Kind:     editable.Kind,
		Category: editable.Category,
		Amount:   editable.Amount,
		Date:     editable.Date,
		Note:     editable.Note,
	}
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Kind:     model.Kind,
			Category: model.Category,
			Amount:   model.Amount,
			Date:     model.Date,
			Note:     model.Note,
		},
	}
}

type TransactionResponse struct {
	Error *string      `json:"error"` // The error, if any occurred
	Data  *Transaction `json:"data"`  // The Transaction data
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`       // List of transactions
	Error      *string       `json:"error"`      // The error, if any occurred
	Pagination *Pagination   `json:"pagination"` // Pagination information
}

type TransactionQueryFilter struct {
	Kind      models.TransactionKind `form:"kind"`               // Filter by transaction kind
	Category  string                 `form:"category"`           // Filter by category
	Month     string                 `form:"month"`              // Transactions in this month, YYYY-MM format
	FromDate  time.Time              `form:"fromDate"`           // Transactions at and after this date
	UntilDate time.Time              `form:"untilDate"`          // Transactions before and at this date
	Offset    uint                   `form:"offset"`             // The offset of the first Transaction returned. Defaults to 0.
	Limit     int                    `form:"limit,default=50"`   // Maximum number of Transactions to return. Defaults to 50.
}
