package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/finvue/backend/internal/facade"
	"github.com/finvue/backend/internal/httputil"
	"github.com/finvue/backend/internal/models"
	"github.com/finvue/backend/internal/types"
	"github.com/finvue/backend/internal/worker"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
//
// Transactions are immutable, there are no update or delete routes.
func RegisterTransactionRoutes(r *gin.RouterGroup, f *facade.Facade, pool *worker.Pool) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactions)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction(f, pool))
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var transaction models.Transaction
	err = models.DB.Where(&models.Transaction{UserID: currentUser(c)}).First(&transaction, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		List transactions
// @Description	Returns a list of transactions for the requesting user
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			kind		query	string	false	"Filter by transaction kind"
// @Param			category	query	string	false	"Filter by category"
// @Param			month		query	string	false	"Transactions in this month, YYYY-MM format"
// @Param			fromDate	query	string	false	"Transactions at and after this date"
// @Param			untilDate	query	string	false	"Transactions before and at this date"
// @Param			offset		query	uint	false	"The offset of the first Transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Transactions to return. Defaults to 50."
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &s})
		return
	}

	q := models.DB.
		Where(&models.Transaction{UserID: currentUser(c)}).
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC")

	if filter.Kind != "" {
		if !slices.Contains([]models.TransactionKind{models.Income, models.Expense}, filter.Kind) {
			s := errTransactionKindInvalid.Error()
			c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &s})
			return
		}

		q = q.Where("transactions.kind = ?", filter.Kind)
	}

	if filter.Category != "" {
		q = q.Where("transactions.category = ?", filter.Category)
	}

	if filter.Month != "" {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			s := errMonthInvalid.Error()
			c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &s})
			return
		}

		q = q.Where("transactions.date >= date(?)", month).Where("transactions.date < date(?)", month.Next())
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("transactions.date >= date(?)", time.Date(filter.FromDate.Year(), filter.FromDate.Month(), filter.FromDate.Day(), 0, 0, 0, 0, time.UTC))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("transactions.date < date(?)", time.Date(filter.UntilDate.Year(), filter.UntilDate.Month(), filter.UntilDate.Day()+1, 0, 0, 0, 0, time.UTC))
	}

	q = q.Offset(int(filter.Offset)).Limit(filter.Limit)

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &s})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  filter.Limit,
		},
	})
}

// @Summary		Create transaction
// @Description	Creates a new transaction and invalidates the cached dashboard and alerts of the user
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func CreateTransaction(f *facade.Facade, pool *worker.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var editable TransactionEditable

		err := httputil.BindData(c, &editable)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, TransactionResponse{Error: &s})
			return
		}

		user := currentUser(c)
		transaction := editable.model(user)

		err = models.DB.Create(&transaction).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), TransactionResponse{Error: &s})
			return
		}

		// The store write is complete, now drop the stale cache entries.
		// This has to happen before the response is returned so that a
		// read directly after this write never sees the old summary.
		f.InvalidateUser(user)

		// Recompute the alerts in the background so the next read is warm.
		// Fire-and-forget, a persistent failure is dropped after the
		// bounded retries.
		pool.Submit("warm-alerts", func() error {
			_, err := f.Alerts(context.Background(), user)
			return err
		})

		data := newTransaction(transaction)
		c.JSON(http.StatusCreated, TransactionResponse{Data: &data})
	}
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	var transaction models.Transaction
	err = models.DB.Where(&models.Transaction{UserID: currentUser(c)}).First(&transaction, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	data := newTransaction(transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}
