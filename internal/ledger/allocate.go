package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Allocate moves money from the account's unallocated pool into an
// envelope by recording an allocation transaction. The account balance
// is not changed, only the envelope balance and the derived unallocated
// figure are.
//
// The source account must be a checking account with unallocated money
// this month. Allocating more than is unallocated is allowed, the guard
// only requires that there is something left to allocate.
func (s *Snapshot) Allocate(amount decimal.Decimal, envelopeID, accountID uuid.UUID, now time.Time) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrAmountNotPositive
	}

	envelope := s.Envelope(envelopeID)
	if envelope == nil {
		return Transaction{}, ErrEnvelopeNotFound
	}

	account := s.Account(accountID)
	if account == nil {
		return Transaction{}, ErrAccountNotFound
	}

	if account.Type != AccountTypeChecking {
		return Transaction{}, ErrAccountNotAllocatable
	}

	if !s.UnallocatedByAccount(now)[accountID].IsPositive() {
		return Transaction{}, ErrNoUnallocatedFunds
	}

	t := Transaction{
		ID:          uuid.New(),
		Date:        now,
		Type:        TransactionTypeAllocation,
		Category:    envelope.Name,
		Amount:      amount,
		AccountID:   accountID,
		EnvelopeID:  &envelopeID,
		Description: AllocationDescription,
	}

	if err := s.Apply(t); err != nil {
		return Transaction{}, err
	}

	return t, nil
}

// MoveMoney moves money between two envelopes. It does not create a
// transaction and does not touch any account balance: the move is a
// pure reallocation, invisible in the transaction history and in the
// monthly aggregates.
//
// The source envelope must hold at least the requested amount,
// otherwise ErrInsufficientFunds is returned and nothing changes.
func (s *Snapshot) MoveMoney(amount decimal.Decimal, fromID, toID uuid.UUID) error {
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}

	from := s.Envelope(fromID)
	if from == nil {
		return ErrEnvelopeNotFound
	}

	to := s.Envelope(toID)
	if to == nil {
		return ErrEnvelopeNotFound
	}

	if from.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	from.Balance = from.Balance.Sub(amount)
	to.Balance = to.Balance.Add(amount)
	return nil
}
