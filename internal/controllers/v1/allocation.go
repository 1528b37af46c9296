package v1

import (
	"net/http"

	"github.com/familybudget/backend/internal/httputil"
	"github.com/familybudget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterAllocationRoutes registers the routes for allocations with
// the RouterGroup that is passed.
//
// Allocations are transactions, so reading and deleting them happens
// through the transaction routes. This group only creates them since
// creation has its own preconditions.
func RegisterAllocationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAllocationList)
	r.POST("", CreateAllocation)
}

// AllocationEditable is the request body for allocating money from an
// account's unallocated funds to an envelope.
type AllocationEditable struct {
	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"100" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount to allocate

	EnvelopeID uuid.UUID `json:"envelopeId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the envelope receiving the money
	AccountID  uuid.UUID `json:"accountId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`  // ID of the checking account the money comes from
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations [options]
func OptionsAllocationList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allocate money to an envelope
// @Description	Moves money from a checking account's unallocated funds into an envelope. Records an allocation transaction that increases the envelope balance without changing the account balance. The account needs unallocated income in the current month.
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			allocation	body		AllocationEditable	true	"Allocation"
// @Router			/v1/allocations [post]
func CreateAllocation(c *gin.Context) {
	var editable AllocationEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	transaction, err := models.Allocate(models.DB, editable.Amount, editable.EnvelopeID, editable.AccountID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	snapshot, err := models.LoadSnapshot(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	data := newTransaction(c, transaction, snapshot)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &data})
}
