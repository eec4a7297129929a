package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/finvue/backend/internal/controllers/v1"
	"github.com/finvue/backend/internal/models"
	"github.com/finvue/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestDashboard() {
	user := uuid.New()

	suite.createTestTransaction(user, v1.TransactionEditable{
		Kind:   "income",
		Amount: decimal.RequireFromString("1000"),
		Date:   time.Now().In(time.UTC),
	})
	suite.createTestTransaction(user, v1.TransactionEditable{
		Kind:     "expense",
		Category: "food",
		Amount:   decimal.RequireFromString("250"),
		Date:     time.Now().In(time.UTC),
	})

	recorder := suite.request(http.MethodGet, "/v1/dashboard", nil, as(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	assert.Equal(suite.T(), "INR", response.Data.Period.Currency)
	assert.True(suite.T(), response.Data.Totals.Income.Equal(decimal.RequireFromString("1000")))
	assert.True(suite.T(), response.Data.Totals.Expense.Equal(decimal.RequireFromString("250")))
	assert.True(suite.T(), response.Data.Totals.Savings.Equal(decimal.RequireFromString("750")))
	require.Len(suite.T(), response.Data.Categories, 1)
	assert.Equal(suite.T(), "food", response.Data.Categories[0].Category)
}

func (suite *TestSuiteStandard) TestDashboardCachedUntilInvalidation() {
	user := uuid.New()

	suite.createTestTransaction(user, v1.TransactionEditable{
		Kind:     "expense",
		Category: "food",
		Amount:   decimal.RequireFromString("100"),
		Date:     time.Now().In(time.UTC),
	})

	first := suite.request(http.MethodGet, "/v1/dashboard", nil, as(user))
	test.AssertHTTPStatus(suite.T(), &first, http.StatusOK)

	// A write past the API does not invalidate the cache, the second
	// read returns the identical payload
	err := models.DB.Create(&models.Transaction{
		UserID: user,
		Kind:   models.Expense,
		Amount: decimal.RequireFromString("50"),
		Date:   time.Now().In(time.UTC),
	}).Error
	require.Nil(suite.T(), err)

	second := suite.request(http.MethodGet, "/v1/dashboard", nil, as(user))
	test.AssertHTTPStatus(suite.T(), &second, http.StatusOK)
	assert.Equal(suite.T(), first.Body.String(), second.Body.String())
}

func (suite *TestSuiteStandard) TestDashboardReadYourWrites() {
	user := uuid.New()

	suite.createTestTransaction(user, v1.TransactionEditable{
		Kind:     "expense",
		Category: "food",
		Amount:   decimal.RequireFromString("100"),
		Date:     time.Now().In(time.UTC),
	})

	recorder := suite.request(http.MethodGet, "/v1/dashboard", nil, as(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	// A write through the API invalidates the cache, the next read
	// reflects it immediately
	suite.createTestTransaction(user, v1.TransactionEditable{
		Kind:     "expense",
		Category: "food",
		Amount:   decimal.RequireFromString("50"),
		Date:     time.Now().In(time.UTC),
	})

	recorder = suite.request(http.MethodGet, "/v1/dashboard", nil, as(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Totals.Expense.Equal(decimal.RequireFromString("150")), "expense is %s", response.Data.Totals.Expense)
}

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	recorder := suite.request(http.MethodGet, "/v1/dashboard", nil, as(uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	assert.True(suite.T(), response.Data.Totals.Income.IsZero())
	assert.True(suite.T(), response.Data.Totals.Expense.IsZero())
	assert.Empty(suite.T(), response.Data.Categories)
	assert.Empty(suite.T(), response.Data.Budgets)
	assert.Empty(suite.T(), response.Data.Goals)
	assert.Empty(suite.T(), response.Data.Insights)
}

func (suite *TestSuiteStandard) TestDashboardOptions() {
	recorder := suite.request(http.MethodOptions, "/v1/dashboard", nil, as(uuid.New()))
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "GET", recorder.Header().Get("allow"))
}
