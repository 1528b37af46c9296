package v1

import (
	"errors"
	"net/http"

	"github.com/familybudget/backend/internal/ledger"
	"github.com/familybudget/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error from the
// models layer or the ledger engine.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) ||
		errors.Is(err, ledger.ErrAccountNotFound) ||
		errors.Is(err, ledger.ErrEnvelopeNotFound) ||
		errors.Is(err, ledger.ErrTransactionNotFound) {
		return http.StatusNotFound
	}

	// Validation errors, insufficient funds and unparseable bodies
	return http.StatusBadRequest
}
