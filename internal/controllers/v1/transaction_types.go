package v1

import (
	"fmt"
	"time"

	"github.com/familybudget/backend/internal/ledger"
	"github.com/familybudget/backend/internal/models"
	ez_uuid "github.com/familybudget/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Date time.Time `json:"date" example:"2024-03-10T18:43:00.271152Z"` // Date of the transaction. Defaults to the current time.

	Type ledger.TransactionType `json:"type" example:"expense"` // Type of the transaction: income, expense or allocation

	Category string `json:"category" example:"Groceries"` // Category of the transaction

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"14.03" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount for the transaction

	AccountID   uuid.UUID  `json:"accountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`  // ID of the account the money flows into or out of
	EnvelopeID  *uuid.UUID `json:"envelopeId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the envelope, only for expenses and allocations
	Description string     `json:"description" example:"Weekly shopping" default:""`          // A description
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:        editable.Date,
		Type:        editable.Type,
		Category:    editable.Category,
		Amount:      editable.Amount,
		AccountID:   editable.AccountID,
		EnvelopeID:  editable.EnvelopeID,
		Description: editable.Description,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the API v1 representation of a transaction. The
// account and envelope names are resolved for display; references to
// deleted resources resolve to "N/A" instead of failing.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	AccountName  string           `json:"accountName" example:"Joint Checking"` // Name of the account, "N/A" if it was deleted
	EnvelopeName *string          `json:"envelopeName" example:"Groceries"`     // Name of the envelope, "N/A" if it was deleted, null if none is set
	Links        TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction, s *ledger.Snapshot) Transaction {
	url := c.GetString(string(models.DBContextURL))

	var envelopeName *string
	if model.EnvelopeID != nil {
		name := ledger.UnknownAccountName
		if envelope := s.Envelope(*model.EnvelopeID); envelope != nil {
			name = envelope.Name
		}
		envelopeName = &name
	}

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:        model.Date,
			Type:        model.Type,
			Category:    model.Category,
			Amount:      model.Amount,
			AccountID:   model.AccountID,
			EnvelopeID:  model.EnvelopeID,
			Description: model.Description,
		},
		AccountName:  s.AccountName(model.AccountID),
		EnvelopeName: envelopeName,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	Date       time.Time              `form:"date" filterField:"false"`      // Exact date. Time is ignored.
	FromDate   time.Time              `form:"fromDate" filterField:"false"`  // From this date. Time is ignored.
	UntilDate  time.Time              `form:"untilDate" filterField:"false"` // Until this date. Time is ignored.
	Type       ledger.TransactionType `form:"type"`                          // Type of the transaction
	Category   string                 `form:"category" filterField:"false"`  // Category of the transaction
	AccountID  ez_uuid.UUID           `form:"account"`                       // ID of the account
	EnvelopeID ez_uuid.UUID           `form:"envelope"`                      // ID of the envelope
	Offset     uint                   `form:"offset" filterField:"false"`    // The offset of the first transaction returned. Defaults to 0.
	Limit      int                    `form:"limit" filterField:"false"`     // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	// If the envelope ID is nil, use an actual nil, not uuid.Nil
	var eID *uuid.UUID
	if f.EnvelopeID != ez_uuid.Nil {
		eID = &f.EnvelopeID.UUID
	}

	// The date fields are handled in the controller function
	return models.Transaction{
		Type:       f.Type,
		AccountID:  f.AccountID.UUID,
		EnvelopeID: eID,
	}
}
