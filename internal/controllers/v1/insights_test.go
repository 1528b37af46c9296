package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/familybudget/backend/internal/controllers/v1"
	"github.com/familybudget/backend/internal/ledger"
	"github.com/familybudget/backend/internal/models"
	"github.com/familybudget/backend/internal/types"
	"github.com/familybudget/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestInsightsOptions() {
	paths := []string{"overview", "spending", "trend"}

	for _, path := range paths {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com/v1/insights/"+path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, "GET", r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestInsightsOverview() {
	checking := createTestAccount(suite.T(), v1.AccountEditable{Name: "Checking"})
	createTestAccount(suite.T(), v1.AccountEditable{Name: "Savings", Type: ledger.AccountTypeSavings, Balance: decimal.NewFromInt(5000)})
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Groceries"})

	createTestIncome(suite.T(), checking.Data.ID, 1000)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/allocations", v1.AllocationEditable{
		Amount:     decimal.NewFromInt(150),
		EnvelopeID: envelope.Data.ID,
		AccountID:  checking.Data.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:       ledger.TransactionTypeExpense,
		Category:   "Groceries",
		Amount:     decimal.NewFromInt(60),
		AccountID:  checking.Data.ID,
		EnvelopeID: &envelope.Data.ID,
	})

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/insights/overview", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.OverviewResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	// 1000 income - 60 expense on checking, 5000 on savings
	suite.Assert().True(response.Data.TotalBalance.Equal(decimal.NewFromInt(5940)))
	suite.Assert().True(response.Data.TotalEnvelopeBalance.Equal(decimal.NewFromInt(90)))
	suite.Assert().True(response.Data.MonthlyIncome.Equal(decimal.NewFromInt(1000)))
	suite.Assert().True(response.Data.MonthlyExpenses.Equal(decimal.NewFromInt(60)))
	suite.Assert().True(response.Data.MonthlySavings.Equal(decimal.NewFromInt(940)))
	suite.Assert().True(response.Data.UnallocatedMoney.Equal(decimal.NewFromInt(850)))

	// Only the checking account holds unallocated money
	suite.Require().Len(response.Data.UnallocatedAccounts, 1)
	suite.Assert().Equal(checking.Data.ID, response.Data.UnallocatedAccounts[0].AccountID)
	suite.Assert().Equal("Checking", response.Data.UnallocatedAccounts[0].AccountName)
	suite.Assert().True(response.Data.UnallocatedAccounts[0].Amount.Equal(decimal.NewFromInt(850)))
}

// TestInsightsOverviewMonth verifies that the month query parameter
// anchors the figures to that month.
func (suite *TestSuiteStandard) TestInsightsOverviewMonth() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})

	createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:      time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		Type:      ledger.TransactionTypeIncome,
		Category:  "Salary",
		Amount:    decimal.NewFromInt(1000),
		AccountID: account.Data.ID,
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/insights/overview?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.OverviewResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Month.Equal(types.NewMonth(2024, 3)))
	suite.Assert().True(response.Data.MonthlyIncome.Equal(decimal.NewFromInt(1000)))

	// A month without transactions has no income
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/insights/overview?month=2024-05", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.MonthlyIncome.IsZero())
}

func (suite *TestSuiteStandard) TestInsightsOverviewInvalidMonth() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/insights/overview?month=notamonth", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.OverviewResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().NotNil(response.Error)
}

func (suite *TestSuiteStandard) TestInsightsSpending() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Groceries", Color: "#ff0000"})

	createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:       ledger.TransactionTypeExpense,
		Category:   "Groceries",
		Amount:     decimal.NewFromInt(60),
		AccountID:  account.Data.ID,
		EnvelopeID: &envelope.Data.ID,
	})

	createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:      ledger.TransactionTypeExpense,
		Category:  "Household",
		Amount:    decimal.NewFromInt(25),
		AccountID: account.Data.ID,
	})

	createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:       ledger.TransactionTypeExpense,
		Category:   "Groceries",
		Amount:     decimal.NewFromInt(40),
		AccountID:  account.Data.ID,
		EnvelopeID: &envelope.Data.ID,
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/insights/spending", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SpendingResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)

	// Groceries carries the color of the envelope with the same name,
	// Household has no envelope and falls back to the default color
	suite.Assert().Equal("Groceries", response.Data[0].Name)
	suite.Assert().True(response.Data[0].Amount.Equal(decimal.NewFromInt(100)))
	suite.Assert().Equal("#ff0000", response.Data[0].Color)

	suite.Assert().Equal("Household", response.Data[1].Name)
	suite.Assert().True(response.Data[1].Amount.Equal(decimal.NewFromInt(25)))
	suite.Assert().Equal(ledger.DefaultCategoryColor, response.Data[1].Color)
}

func (suite *TestSuiteStandard) TestInsightsSpendingEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/insights/spending", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SpendingResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().NotNil(response.Data, "the data must be an empty list, not null")
	suite.Assert().Len(response.Data, 0)
}

func (suite *TestSuiteStandard) TestInsightsTrend() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})

	createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:      time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		Type:      ledger.TransactionTypeIncome,
		Category:  "Salary",
		Amount:    decimal.NewFromInt(1000),
		AccountID: account.Data.ID,
	})

	createTestTransaction(suite.T(), v1.TransactionEditable{
		Date:      time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC),
		Type:      ledger.TransactionTypeExpense,
		Category:  "Groceries",
		Amount:    decimal.NewFromInt(300),
		AccountID: account.Data.ID,
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/insights/trend?month=2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TrendResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 6)

	// Six months ending with the requested one, oldest first
	suite.Assert().True(response.Data[0].Month.Equal(types.NewMonth(2023, 10)))
	suite.Assert().True(response.Data[5].Month.Equal(types.NewMonth(2024, 3)))

	january := response.Data[3]
	suite.Assert().True(january.Month.Equal(types.NewMonth(2024, 1)))
	suite.Assert().True(january.Income.Equal(decimal.NewFromInt(1000)))
	suite.Assert().True(january.Expenses.Equal(decimal.NewFromInt(300)))
	suite.Assert().True(january.Savings.Equal(decimal.NewFromInt(700)))

	// Months without transactions are zero, not missing
	suite.Assert().True(response.Data[0].Income.IsZero())
	suite.Assert().True(response.Data[0].Expenses.IsZero())
}

func (suite *TestSuiteStandard) TestInsightsDatabaseClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/insights/overview", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.OverviewResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal(models.ErrGeneral.Error(), *response.Error)
}
