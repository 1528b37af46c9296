package models

import (
	"time"

	"github.com/familybudget/backend/internal/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents a single entry in the ledger log. Transactions
// are append-only: they are never updated, only created and deleted,
// and deletion reverses exactly the side effects creation had.
type Transaction struct {
	DefaultModel
	Date        time.Time
	Type        ledger.TransactionType
	Category    string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	AccountID   uuid.UUID
	EnvelopeID  *uuid.UUID
	Description string
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	t.Date = t.Date.In(time.UTC)
	return t.DefaultModel.AfterFind(tx)
}

// BeforeSave sets the timezone for the date to UTC and verifies the
// transaction type.
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	return nil
}

// Ledger returns the ledger engine representation of the transaction.
func (t Transaction) Ledger() ledger.Transaction {
	return ledger.Transaction{
		ID:          t.ID,
		Date:        t.Date,
		Type:        t.Type,
		Category:    t.Category,
		Amount:      t.Amount,
		AccountID:   t.AccountID,
		EnvelopeID:  t.EnvelopeID,
		Description: t.Description,
	}
}

// newTransaction builds the database resource for a transaction the
// ledger engine created, keeping the engine-assigned ID.
func newTransaction(t ledger.Transaction) Transaction {
	return Transaction{
		DefaultModel: DefaultModel{ID: t.ID},
		Date:         t.Date,
		Type:         t.Type,
		Category:     t.Category,
		Amount:       t.Amount,
		AccountID:    t.AccountID,
		EnvelopeID:   t.EnvelopeID,
		Description:  t.Description,
	}
}
