// Package ledger implements the envelope-budgeting core: accounts,
// envelopes and the transaction log, together with the mutation and
// derivation rules that keep their balances consistent.
//
// The package is deliberately free of transport and storage concerns.
// It operates on an in-memory Snapshot and is driven by exactly one
// caller at a time; persistence wraps it from the outside.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType describes what kind of account money lives in. Only
// checking accounts hold unallocated money, all other types are
// considered fully allocated.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeRetirement AccountType = "retirement"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeCredit     AccountType = "credit"
)

// Valid reports whether the account type is one of the known types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeRetirement, AccountTypeInvestment, AccountTypeCredit:
		return true
	}

	return false
}

// TransactionType describes the effect a transaction has on the ledger.
type TransactionType string

const (
	TransactionTypeIncome     TransactionType = "income"
	TransactionTypeExpense    TransactionType = "expense"
	TransactionTypeAllocation TransactionType = "allocation"
)

// Valid reports whether the transaction type is one of the known types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeAllocation:
		return true
	}

	return false
}

// UnknownAccountName is the display name resolved for references to
// accounts that have been deleted.
const UnknownAccountName = "N/A"

// AllocationDescription is the fixed description for allocation
// transactions created by Allocate.
const AllocationDescription = "Money allocated to envelope"

// DefaultCategoryColor is used for spending categories that do not
// match any envelope by name.
const DefaultCategoryColor = "#6b7280"

// Account is an asset or liability account, e.g. a bank account.
type Account struct {
	ID      uuid.UUID
	Name    string
	Type    AccountType
	Balance decimal.Decimal
}

// Envelope is a named sub-budget. Balance is the money currently
// allocated and available to spend, not a running spent total. It may
// go negative when spending exceeds the allocation and may exceed
// BudgetLimit when more than the limit is allocated.
type Envelope struct {
	ID          uuid.UUID
	Name        string
	BudgetLimit decimal.Decimal
	Color       string
	Balance     decimal.Decimal
}

// Transaction is a single entry in the ledger log. Transactions are
// immutable once applied; the only mutation is removal via Reverse.
type Transaction struct {
	ID          uuid.UUID
	Date        time.Time
	Type        TransactionType
	Category    string
	Amount      decimal.Decimal
	AccountID   uuid.UUID
	EnvelopeID  *uuid.UUID
	Description string
}

// Snapshot is the full ledger state. Transactions are ordered newest
// first.
type Snapshot struct {
	Accounts     []Account
	Envelopes    []Envelope
	Transactions []Transaction
}

// Account returns a pointer to the account with the given ID, nil if
// there is none.
func (s *Snapshot) Account(id uuid.UUID) *Account {
	for i := range s.Accounts {
		if s.Accounts[i].ID == id {
			return &s.Accounts[i]
		}
	}

	return nil
}

// Envelope returns a pointer to the envelope with the given ID, nil if
// there is none.
func (s *Snapshot) Envelope(id uuid.UUID) *Envelope {
	for i := range s.Envelopes {
		if s.Envelopes[i].ID == id {
			return &s.Envelopes[i]
		}
	}

	return nil
}

// AccountName resolves an account ID to its name. References to deleted
// accounts resolve to UnknownAccountName, they never fail.
func (s *Snapshot) AccountName(id uuid.UUID) string {
	if account := s.Account(id); account != nil {
		return account.Name
	}

	return UnknownAccountName
}

// transactionIndex returns the position of the transaction in the log,
// -1 if it is not present.
func (s *Snapshot) transactionIndex(id uuid.UUID) int {
	for i := range s.Transactions {
		if s.Transactions[i].ID == id {
			return i
		}
	}

	return -1
}
