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

func (suite *TestSuiteStandard) createTestBudget(user uuid.UUID, editable v1.BudgetEditable) v1.Budget {
	if editable.StartDate.IsZero() {
		editable.StartDate = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	}
	if editable.EndDate.IsZero() {
		editable.EndDate = time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	}

	recorder := suite.request(http.MethodPost, "/v1/budgets", editable, as(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	return *response.Data
}

func (suite *TestSuiteStandard) TestBudgetCreate() {
	budget := suite.createTestBudget(uuid.New(), v1.BudgetEditable{
		Category:    "food",
		LimitAmount: decimal.RequireFromString("200"),
	})

	assert.NotEqual(suite.T(), uuid.Nil, budget.ID)
	assert.Equal(suite.T(), "food", budget.Category)
}

func (suite *TestSuiteStandard) TestBudgetCreateInvalid() {
	user := uuid.New()

	tests := []struct {
		name string
		body any
	}{
		{"broken json", `{ "category": "food"`},
		{"zero limit", map[string]any{"category": "food", "limitAmount": "0", "startDate": "2024-02-01T00:00:00Z", "endDate": "2024-02-29T00:00:00Z"}},
		{"inverted dates", map[string]any{"category": "food", "limitAmount": "200", "startDate": "2024-02-29T00:00:00Z", "endDate": "2024-02-01T00:00:00Z"}},
	}

	for _, tt := range tests {
		recorder := suite.request(http.MethodPost, "/v1/budgets", tt.body, as(user))
		assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code, tt.name)
	}
}

func (suite *TestSuiteStandard) TestBudgetList() {
	user := uuid.New()

	first := suite.createTestBudget(user, v1.BudgetEditable{Category: "food", LimitAmount: decimal.RequireFromString("200")})
	second := suite.createTestBudget(user, v1.BudgetEditable{Category: "travel", LimitAmount: decimal.RequireFromString("500")})

	// Budgets of other users stay invisible
	suite.createTestBudget(uuid.New(), v1.BudgetEditable{Category: "food", LimitAmount: decimal.RequireFromString("999")})

	recorder := suite.request(http.MethodGet, "/v1/budgets", nil, as(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 2)

	// Creation order is preserved
	assert.Equal(suite.T(), first.ID, response.Data[0].ID)
	assert.Equal(suite.T(), second.ID, response.Data[1].ID)
}

func (suite *TestSuiteStandard) TestBudgetGet() {
	user := uuid.New()
	created := suite.createTestBudget(user, v1.BudgetEditable{Category: "food", LimitAmount: decimal.RequireFromString("200")})

	recorder := suite.request(http.MethodGet, fmt.Sprintf("/v1/budgets/%s", created.ID), nil, as(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), created.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestBudgetGetOtherUser() {
	created := suite.createTestBudget(uuid.New(), v1.BudgetEditable{Category: "food", LimitAmount: decimal.RequireFromString("200")})

	recorder := suite.request(http.MethodGet, fmt.Sprintf("/v1/budgets/%s", created.ID), nil, as(uuid.New()))
	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func (suite *TestSuiteStandard) TestBudgetOptions() {
	recorder := suite.request(http.MethodOptions, "/v1/budgets", nil, as(uuid.New()))
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "GET, POST", recorder.Header().Get("allow"))
}
