package models

import (
	"strings"

	"github.com/familybudget/backend/internal/ledger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account represents a real-world account money lives in, e.g. a bank
// account. Its balance is only changed by transaction application and
// reversal or by an explicit edit.
type Account struct {
	DefaultModel
	Name    string
	Type    ledger.AccountType
	Balance decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// BeforeSave ensures consistency for the account.
//
// It trims whitespace from the name and verifies the account type.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)

	if a.Type == "" {
		a.Type = ledger.AccountTypeChecking
	}

	if !a.Type.Valid() {
		return ErrAccountTypeInvalid
	}

	return nil
}

// Ledger returns the ledger engine representation of the account.
func (a Account) Ledger() ledger.Account {
	return ledger.Account{
		ID:      a.ID,
		Name:    a.Name,
		Type:    a.Type,
		Balance: a.Balance,
	}
}
