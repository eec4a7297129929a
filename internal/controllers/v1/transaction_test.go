package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/finvue/backend/internal/controllers/v1"
	"github.com/finvue/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestTransaction(user uuid.UUID, editable v1.TransactionEditable) v1.Transaction {
	recorder := suite.request(http.MethodPost, "/v1/transactions", editable, as(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestTransactionCreate() {
	user := uuid.New()

	transaction := suite.createTestTransaction(user, v1.TransactionEditable{
		Kind:     "expense",
		Category: "food",
		Amount:   decimal.RequireFromString("14.03"),
		Date:     time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		Note:     "Lunch with the team",
	})

	assert.NotEqual(suite.T(), uuid.Nil, transaction.ID)
	assert.Equal(suite.T(), "food", transaction.Category)
	assert.Equal(suite.T(), "Lunch with the team", transaction.Note)
}

func (suite *TestSuiteStandard) TestTransactionCreateInvalid() {
	user := uuid.New()

	tests := []struct {
		name string
		body any
	}{
		{"broken json", `{ "kind": "expense"`},
		{"unknown kind", map[string]any{"kind": "transfer", "amount": "10"}},
		{"zero amount", map[string]any{"kind": "expense", "amount": "0"}},
		{"negative amount", map[string]any{"kind": "expense", "amount": "-10"}},
	}

	for _, tt := range tests {
		recorder := suite.request(http.MethodPost, "/v1/transactions", tt.body, as(user))
		assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code, tt.name)
	}
}

func (suite *TestSuiteStandard) TestTransactionGet() {
	user := uuid.New()

	created := suite.createTestTransaction(user, v1.TransactionEditable{
		Kind:   "income",
		Amount: decimal.RequireFromString("1000"),
	})

	recorder := suite.request(http.MethodGet, fmt.Sprintf("/v1/transactions/%s", created.ID), nil, as(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), created.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestTransactionGetOtherUser() {
	owner := uuid.New()

	created := suite.createTestTransaction(owner, v1.TransactionEditable{
		Kind:   "income",
		Amount: decimal.RequireFromString("1000"),
	})

	// Another user cannot see the transaction
	recorder := suite.request(http.MethodGet, fmt.Sprintf("/v1/transactions/%s", created.ID), nil, as(uuid.New()))
	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func (suite *TestSuiteStandard) TestTransactionGetNotFound() {
	recorder := suite.request(http.MethodGet, fmt.Sprintf("/v1/transactions/%s", uuid.New()), nil, as(uuid.New()))
	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func (suite *TestSuiteStandard) TestTransactionList() {
	user := uuid.New()

	suite.createTestTransaction(user, v1.TransactionEditable{
		Kind:     "expense",
		Category: "food",
		Amount:   decimal.RequireFromString("200"),
		Date:     time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
	})
	suite.createTestTransaction(user, v1.TransactionEditable{
		Kind:     "expense",
		Category: "rent",
		Amount:   decimal.RequireFromString("750"),
		Date:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	suite.createTestTransaction(user, v1.TransactionEditable{
		Kind:   "income",
		Amount: decimal.RequireFromString("1000"),
		Date:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	// Transactions of other users stay invisible
	suite.createTestTransaction(uuid.New(), v1.TransactionEditable{
		Kind:     "expense",
		Category: "food",
		Amount:   decimal.RequireFromString("9999"),
	})

	tests := []struct {
		query string
		count int
	}{
		{"", 3},
		{"?kind=expense", 2},
		{"?category=food", 1},
		{"?month=2024-02", 2},
		{"?month=2024-03", 1},
		{"?kind=expense&month=2024-03", 0},
		{"?limit=1", 1},
		{"?offset=2", 1},
	}

	for _, tt := range tests {
		recorder := suite.request(http.MethodGet, "/v1/transactions"+tt.query, nil, as(user))
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response v1.TransactionListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		assert.Len(suite.T(), response.Data, tt.count, "wrong number of transactions for query %q", tt.query)
	}
}

func (suite *TestSuiteStandard) TestTransactionListOrder() {
	user := uuid.New()

	older := suite.createTestTransaction(user, v1.TransactionEditable{
		Kind:   "expense",
		Amount: decimal.RequireFromString("10"),
		Date:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	newer := suite.createTestTransaction(user, v1.TransactionEditable{
		Kind:   "expense",
		Amount: decimal.RequireFromString("20"),
		Date:   time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
	})

	recorder := suite.request(http.MethodGet, "/v1/transactions", nil, as(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 2)

	// Newest transaction first
	assert.Equal(suite.T(), newer.ID, response.Data[0].ID)
	assert.Equal(suite.T(), older.ID, response.Data[1].ID)
}

func (suite *TestSuiteStandard) TestTransactionListPagination() {
	user := uuid.New()

	for i := range 3 {
		suite.createTestTransaction(user, v1.TransactionEditable{
			Kind:   "expense",
			Amount: decimal.RequireFromString("10"),
			Date:   time.Date(2024, 2, 1+i, 0, 0, 0, 0, time.UTC),
		})
	}

	recorder := suite.request(http.MethodGet, "/v1/transactions?limit=2", nil, as(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Pagination)
	assert.Equal(suite.T(), 2, response.Pagination.Count)
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)
	assert.Equal(suite.T(), 2, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestTransactionListInvalidFilters() {
	user := uuid.New()

	tests := []struct {
		query string
	}{
		{"?kind=transfer"},
		{"?month=February"},
		{"?month=2024-13"},
	}

	for _, tt := range tests {
		recorder := suite.request(http.MethodGet, "/v1/transactions"+tt.query, nil, as(user))
		assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code, tt.query)
	}
}

func (suite *TestSuiteStandard) TestTransactionImmutable() {
	user := uuid.New()

	created := suite.createTestTransaction(user, v1.TransactionEditable{
		Kind:   "expense",
		Amount: decimal.RequireFromString("10"),
	})

	// There is no update or delete for transactions
	for _, method := range []string{http.MethodPatch, http.MethodDelete} {
		recorder := suite.request(method, fmt.Sprintf("/v1/transactions/%s", created.ID), nil, as(user))
		assert.Equal(suite.T(), http.StatusMethodNotAllowed, recorder.Code, method)
	}
}

func (suite *TestSuiteStandard) TestTransactionOptions() {
	recorder := suite.request(http.MethodOptions, "/v1/transactions", nil, as(uuid.New()))
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "GET, POST", recorder.Header().Get("allow"))
}

