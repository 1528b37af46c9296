package models

import (
	"strings"

	"github.com/familybudget/backend/internal/ledger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultEnvelopeColor is used for envelopes created without an
// explicit color.
const DefaultEnvelopeColor = "#3b82f6"

// Envelope represents an envelope in the budget. Balance is the money
// currently allocated to the envelope, it starts at zero and is only
// changed through the ledger engine.
type Envelope struct {
	DefaultModel
	Name        string
	BudgetLimit decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Color       string
	Balance     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// BeforeSave trims whitespace and defaults the color.
func (e *Envelope) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)

	if e.Color == "" {
		e.Color = DefaultEnvelopeColor
	}

	return nil
}

// Ledger returns the ledger engine representation of the envelope.
func (e Envelope) Ledger() ledger.Envelope {
	return ledger.Envelope{
		ID:          e.ID,
		Name:        e.Name,
		BudgetLimit: e.BudgetLimit,
		Color:       e.Color,
		Balance:     e.Balance,
	}
}
