package v1

import (
	"fmt"

	"github.com/familybudget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EnvelopeEditable struct {
	Name        string          `json:"name" example:"Groceries"`                                  // Name of the envelope
	BudgetLimit decimal.Decimal `json:"budgetLimit" example:"400" multipleOf:"0.00000001"`         // Monthly budget limit for the envelope
	Color       string          `json:"color" example:"#3b82f6" default:"#3b82f6"`                 // Display color for the envelope
}

// model returns the database resource for the API representation of the editable fields.
// The balance is not editable, new envelopes always start at zero.
func (editable EnvelopeEditable) model() models.Envelope {
	return models.Envelope{
		Name:        editable.Name,
		BudgetLimit: editable.BudgetLimit,
		Color:       editable.Color,
	}
}

type EnvelopeLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/envelopes/2649c965-7999-4873-ae16-89d5d5fa972e"`                 // The envelope itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?envelope=2649c965-7999-4873-ae16-89d5d5fa972e"` // Transactions referencing the envelope
}

// Envelope is the API v1 representation of an envelope, including the
// derived spending figures.
type Envelope struct {
	models.DefaultModel
	EnvelopeEditable
	Balance    decimal.Decimal `json:"balance" example:"150"`    // Money currently allocated and available to spend
	Spent      decimal.Decimal `json:"spent" example:"250"`      // Budget limit minus balance
	Remaining  decimal.Decimal `json:"remaining" example:"150"`  // Same as the balance, kept for the envelope overview
	Percentage decimal.Decimal `json:"percentage" example:"62.5"` // Percentage of the budget limit spent, 0 for unlimited envelopes
	Links      EnvelopeLinks   `json:"links"`
}

// newEnvelope returns the API v1 representation of the resource
func newEnvelope(c *gin.Context, model models.Envelope) Envelope {
	url := c.GetString(string(models.DBContextURL))
	insight := model.Ledger().Insight()

	return Envelope{
		DefaultModel: model.DefaultModel,
		EnvelopeEditable: EnvelopeEditable{
			Name:        model.Name,
			BudgetLimit: model.BudgetLimit,
			Color:       model.Color,
		},
		Balance:    model.Balance,
		Spent:      insight.Spent,
		Remaining:  insight.Remaining,
		Percentage: insight.Percentage,
		Links: EnvelopeLinks{
			Self:         fmt.Sprintf("%s/v1/envelopes/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?envelope=%s", url, model.ID),
		},
	}
}

type EnvelopeListResponse struct {
	Data       []Envelope  `json:"data"`                                                          // List of envelopes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type EnvelopeCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []EnvelopeResponse `json:"data"`                                                          // List of created envelopes
}

func (e *EnvelopeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, EnvelopeResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type EnvelopeResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this envelope
	Data  *Envelope `json:"data"`                                                          // The envelope data, if the request was successful
}

type EnvelopeQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Name of the envelope, exact match
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first envelope returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of envelopes to return. Defaults to 50.
}

// MoveMoneyEditable is the request body for moving money between two
// envelopes.
type MoveMoneyEditable struct {
	Amount         decimal.Decimal `json:"amount" example:"50" minimum:"0.00000001"`                      // The amount to move
	FromEnvelopeID uuid.UUID       `json:"fromEnvelopeId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // Source envelope
	ToEnvelopeID   uuid.UUID       `json:"toEnvelopeId" example:"a6f13cc3-c4d7-43a6-9771-cdc4eb05bd18"`   // Destination envelope
}
