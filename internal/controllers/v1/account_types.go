package v1

import (
	"fmt"

	"github.com/familybudget/backend/internal/ledger"
	"github.com/familybudget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AccountEditable struct {
	Name string             `json:"name" example:"Joint Checking"`                     // Name of the account
	Type ledger.AccountType `json:"type" example:"checking" default:"checking"`        // Type of the account
	// The balance is set on creation and replaced in full on updates.
	// Afterwards it only changes through transactions.
	Balance decimal.Decimal `json:"balance" example:"1540.21" multipleOf:"0.00000001"` // Current balance of the account
}

// model returns the database resource for the API representation of the editable fields
func (editable AccountEditable) model() models.Account {
	return models.Account{
		Name:    editable.Name,
		Type:    editable.Type,
		Balance: editable.Balance,
	}
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`             // The account itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Transactions referencing the account
}

// Account is the API v1 representation of an account.
type Account struct {
	models.DefaultModel
	AccountEditable
	Links AccountLinks `json:"links"`
}

// newAccount returns the API v1 representation of the resource
func newAccount(c *gin.Context, model models.Account) Account {
	url := c.GetString(string(models.DBContextURL))

	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			Name:    model.Name,
			Type:    model.Type,
			Balance: model.Balance,
		},
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?account=%s", url, model.ID),
		},
	}
}

type AccountListResponse struct {
	Data       []Account   `json:"data"`                                                          // List of accounts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AccountCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AccountResponse `json:"data"`                                                          // List of created accounts
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this account
	Data  *Account `json:"data"`                                                          // The account data, if the request was successful
}

type AccountQueryFilter struct {
	Name   string             `form:"name" filterField:"false"`   // Name of the account, exact match
	Type   ledger.AccountType `form:"type"`                       // Type of the account
	Offset uint               `form:"offset" filterField:"false"` // The offset of the first account returned. Defaults to 0.
	Limit  int                `form:"limit" filterField:"false"`  // Maximum number of accounts to return. Defaults to 50.
}

func (f AccountQueryFilter) model() models.Account {
	return models.Account{
		Type: f.Type,
	}
}
