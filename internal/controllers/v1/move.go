package v1

import (
	"net/http"

	"github.com/familybudget/backend/internal/httputil"
	"github.com/familybudget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterMoveRoutes registers the routes for moving money between
// envelopes with the RouterGroup that is passed.
//
// A move leaves no transaction behind, so there is nothing to read or
// delete here.
func RegisterMoveRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMoveList)
	r.POST("", CreateMove)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Moves
// @Success		204
// @Router			/v1/moves [options]
func OptionsMoveList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Move money between envelopes
// @Description	Moves money from one envelope to another. The source envelope needs a sufficient balance. No transaction is recorded, only the two envelope balances change.
// @Tags			Moves
// @Accept			json
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			move	body		MoveMoneyEditable	true	"Move"
// @Router			/v1/moves [post]
func CreateMove(c *gin.Context) {
	var editable MoveMoneyEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.MoveMoney(models.DB, editable.Amount, editable.FromEnvelopeID, editable.ToEnvelopeID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
