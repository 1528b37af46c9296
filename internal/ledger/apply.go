package ledger

import "github.com/google/uuid"

// validate checks the fields that every transaction needs before it can
// be applied.
func (t Transaction) validate() error {
	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if t.Category == "" {
		return ErrCategoryMissing
	}

	if t.AccountID == uuid.Nil {
		return ErrAccountMissing
	}

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	return nil
}

// Apply applies a transaction to the snapshot and prepends it to the
// log.
//
// Income increases the account balance, expenses decrease it. An
// expense with an envelope set additionally decreases that envelope's
// balance by the same amount; the envelope balance is allowed to go
// negative. Allocations increase the envelope balance without touching
// the account balance, since they only redistribute money that is
// already in the account.
//
// On any error the snapshot is unchanged.
func (s *Snapshot) Apply(t Transaction) error {
	if err := t.validate(); err != nil {
		return err
	}

	account := s.Account(t.AccountID)
	if account == nil {
		return ErrAccountNotFound
	}

	switch t.Type {
	case TransactionTypeIncome:
		account.Balance = account.Balance.Add(t.Amount)

	case TransactionTypeExpense:
		account.Balance = account.Balance.Sub(t.Amount)

		// A missing envelope reference degrades to an account-only
		// expense instead of failing.
		if t.EnvelopeID != nil {
			if envelope := s.Envelope(*t.EnvelopeID); envelope != nil {
				envelope.Balance = envelope.Balance.Sub(t.Amount)
			}
		}

	case TransactionTypeAllocation:
		if t.EnvelopeID == nil {
			return ErrEnvelopeNotFound
		}

		envelope := s.Envelope(*t.EnvelopeID)
		if envelope == nil {
			return ErrEnvelopeNotFound
		}

		envelope.Balance = envelope.Balance.Add(t.Amount)
	}

	s.Transactions = append([]Transaction{t}, s.Transactions...)
	return nil
}

// Reverse undoes exactly the effect that applying the transaction with
// the given ID had and removes it from the log.
//
// The reversal uses the amount and references stored on the transaction
// itself, so it stays correct even if accounts or envelopes have been
// renamed since. If the account has been deleted in the meantime the
// transaction is orphaned: it is removed from the log without touching
// any balance. An expense whose envelope has been deleted restores the
// account balance only.
func (s *Snapshot) Reverse(id uuid.UUID) error {
	idx := s.transactionIndex(id)
	if idx < 0 {
		return ErrTransactionNotFound
	}

	t := s.Transactions[idx]

	if account := s.Account(t.AccountID); account != nil {
		switch t.Type {
		case TransactionTypeIncome:
			account.Balance = account.Balance.Sub(t.Amount)

		case TransactionTypeExpense:
			account.Balance = account.Balance.Add(t.Amount)

			if t.EnvelopeID != nil {
				if envelope := s.Envelope(*t.EnvelopeID); envelope != nil {
					envelope.Balance = envelope.Balance.Add(t.Amount)
				}
			}

		case TransactionTypeAllocation:
			if t.EnvelopeID != nil {
				if envelope := s.Envelope(*t.EnvelopeID); envelope != nil {
					envelope.Balance = envelope.Balance.Sub(t.Amount)
				}
			}
		}
	}

	s.Transactions = append(s.Transactions[:idx], s.Transactions[idx+1:]...)
	return nil
}
