package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/familybudget/backend/internal/controllers/v1"
	"github.com/familybudget/backend/internal/ledger"
	"github.com/familybudget/backend/internal/models"
	"github.com/familybudget/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestEnvelopesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestEnvelopesOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Envelope with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Envelope exists", createTestEnvelope(suite.T(), v1.EnvelopeEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/envelopes", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestEnvelopesCreate() {
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:        "Groceries",
		BudgetLimit: decimal.NewFromInt(400),
	})

	suite.Assert().Equal("Groceries", envelope.Data.Name)
	suite.Assert().Equal(models.DefaultEnvelopeColor, envelope.Data.Color)
	suite.Assert().True(envelope.Data.Balance.IsZero(), "new envelopes must start with a balance of 0")
}

func (suite *TestSuiteStandard) TestEnvelopesGetList() {
	createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Groceries"})
	createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Fun"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/envelopes", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EnvelopeListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Len(response.Data, 2)
	suite.Assert().Equal("Groceries", response.Data[0].Name, "envelopes must be in creation order")
}

// TestEnvelopesInsights verifies the derived figures in the envelope
// response after allocating and spending.
func (suite *TestSuiteStandard) TestEnvelopesInsights() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:        "Groceries",
		BudgetLimit: decimal.NewFromInt(400),
	})

	createTestIncome(suite.T(), account.Data.ID, 1000)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/allocations", v1.AllocationEditable{
		Amount:     decimal.NewFromInt(150),
		EnvelopeID: envelope.Data.ID,
		AccountID:  account.Data.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:       ledger.TransactionTypeExpense,
		Category:   "Groceries",
		Amount:     decimal.NewFromInt(60),
		AccountID:  account.Data.ID,
		EnvelopeID: &envelope.Data.ID,
	})

	r = test.Request(suite.T(), http.MethodGet, envelope.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EnvelopeResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(response.Data.Balance.Equal(decimal.NewFromInt(90)))
	suite.Assert().True(response.Data.Spent.Equal(decimal.NewFromInt(310)))
	suite.Assert().True(response.Data.Remaining.Equal(decimal.NewFromInt(90)))
	suite.Assert().True(response.Data.Percentage.Equal(decimal.NewFromFloat(77.5)))
}

func (suite *TestSuiteStandard) TestEnvelopesUpdate() {
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodPatch, envelope.Data.Links.Self, map[string]any{
		"budgetLimit": "500",
		"color":       "#ff0000",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EnvelopeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.BudgetLimit.Equal(decimal.NewFromInt(500)))
	suite.Assert().Equal("#ff0000", response.Data.Color)
}

// TestEnvelopesBalanceNotEditable verifies that the balance field in a
// PATCH request is ignored, it only changes through the ledger.
func (suite *TestSuiteStandard) TestEnvelopesBalanceNotEditable() {
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Groceries"})

	r := test.Request(suite.T(), http.MethodPatch, envelope.Data.Links.Self, map[string]any{
		"name":    "Still Groceries",
		"balance": "999",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EnvelopeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Still Groceries", response.Data.Name)
	suite.Assert().True(response.Data.Balance.IsZero())
}

func (suite *TestSuiteStandard) TestEnvelopesDelete() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Groceries"})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:       ledger.TransactionTypeExpense,
		Category:   "Groceries",
		Amount:     decimal.NewFromInt(10),
		AccountID:  account.Data.ID,
		EnvelopeID: &envelope.Data.ID,
	})

	r := test.Request(suite.T(), http.MethodDelete, envelope.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The transaction survives and resolves the envelope name to "N/A"
	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data.EnvelopeName)
	suite.Assert().Equal(ledger.UnknownAccountName, *response.Data.EnvelopeName)

	r = test.Request(suite.T(), http.MethodGet, envelope.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestEnvelopesGetSingleErrors() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"ID nil", uuid.Nil.String(), http.StatusNotFound},
		{"No Envelope with this ID", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", "notaUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/envelopes/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.EnvelopeResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Error)
		})
	}
}
