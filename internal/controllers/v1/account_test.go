package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/familybudget/backend/internal/controllers/v1"
	"github.com/familybudget/backend/internal/ledger"
	"github.com/familybudget/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestAccountsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestAccountsOptions() {
	tests := []struct {
		name   string
		id     string // path at the Accounts endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Account with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Account exists", createTestAccount(suite.T(), v1.AccountEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/accounts", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsCreate() {
	account := createTestAccount(suite.T(), v1.AccountEditable{
		Name:    "Joint Checking",
		Type:    ledger.AccountTypeChecking,
		Balance: decimal.NewFromInt(250),
	})

	suite.Assert().Equal("Joint Checking", account.Data.Name)
	suite.Assert().True(account.Data.Balance.Equal(decimal.NewFromInt(250)))
	suite.Assert().Equal("http://example.com/v1/accounts/"+account.Data.ID.String(), account.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestAccountsCreateInvalidType() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/accounts", []v1.AccountEditable{
		{Name: "Broken", Type: "cash-under-mattress"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAccountsCreateInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/accounts", `{ "name": "not a list" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAccountsGetList() {
	createTestAccount(suite.T(), v1.AccountEditable{Name: "Checking"})
	createTestAccount(suite.T(), v1.AccountEditable{Name: "Savings", Type: ledger.AccountTypeSavings})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AccountListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Len(response.Data, 2)
	suite.Assert().Equal(int64(2), response.Pagination.Total)
	suite.Assert().Equal("Checking", response.Data[0].Name, "accounts must be in creation order")
}

func (suite *TestSuiteStandard) TestAccountsGetFilters() {
	createTestAccount(suite.T(), v1.AccountEditable{Name: "Checking"})
	createTestAccount(suite.T(), v1.AccountEditable{Name: "Savings", Type: ledger.AccountTypeSavings})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"by name", "name=Savings", 1},
		{"by type", "type=checking", 1},
		{"no match", "name=Nonexistent", 0},
		{"limit", "limit=1", 1},
		{"offset", "offset=2", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/accounts?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.AccountListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsGetSingle() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing Account", account.Data.ID.String(), http.StatusOK},
		{"ID nil", uuid.Nil.String(), http.StatusNotFound},
		{"No Account with this ID", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", "notaUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsUpdate() {
	account := createTestAccount(suite.T(), v1.AccountEditable{Name: "Checking"})

	r := test.Request(suite.T(), http.MethodPatch, account.Data.Links.Self, map[string]any{
		"name": "Renamed Checking",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Renamed Checking", response.Data.Name)
}

// TestAccountsUpdateBalance verifies the escape hatch: the account
// balance can be edited directly, bypassing the transaction log.
func (suite *TestSuiteStandard) TestAccountsUpdateBalance() {
	account := createTestAccount(suite.T(), v1.AccountEditable{Name: "Checking"})

	r := test.Request(suite.T(), http.MethodPatch, account.Data.Links.Self, map[string]any{
		"balance": "1234.56",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.Balance.Equal(decimal.NewFromFloat(1234.56)))
}

func (suite *TestSuiteStandard) TestAccountsDelete() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})

	r := test.Request(suite.T(), http.MethodDelete, account.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, account.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestAccountsDeleteKeepsTransactions verifies that transactions survive
// the deletion of their account and resolve its name to "N/A".
func (suite *TestSuiteStandard) TestAccountsDeleteKeepsTransactions() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})
	transaction := createTestIncome(suite.T(), account.Data.ID, 100)

	r := test.Request(suite.T(), http.MethodDelete, account.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(ledger.UnknownAccountName, response.Data.AccountName)
}
