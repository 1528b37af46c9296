package models

import (
	"time"

	"github.com/familybudget/backend/internal/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LoadSnapshot reads the full ledger state from the database. The
// transaction log is ordered newest first, as the ledger engine
// expects.
func LoadSnapshot(db *gorm.DB) (*ledger.Snapshot, error) {
	var accounts []Account
	if err := db.Order("created_at ASC").Find(&accounts).Error; err != nil {
		return nil, err
	}

	var envelopes []Envelope
	if err := db.Order("created_at ASC").Find(&envelopes).Error; err != nil {
		return nil, err
	}

	var transactions []Transaction
	if err := db.Order("date DESC, created_at DESC").Find(&transactions).Error; err != nil {
		return nil, err
	}

	snapshot := &ledger.Snapshot{
		Accounts:     make([]ledger.Account, 0, len(accounts)),
		Envelopes:    make([]ledger.Envelope, 0, len(envelopes)),
		Transactions: make([]ledger.Transaction, 0, len(transactions)),
	}

	for _, account := range accounts {
		snapshot.Accounts = append(snapshot.Accounts, account.Ledger())
	}
	for _, envelope := range envelopes {
		snapshot.Envelopes = append(snapshot.Envelopes, envelope.Ledger())
	}
	for _, transaction := range transactions {
		snapshot.Transactions = append(snapshot.Transactions, transaction.Ledger())
	}

	return snapshot, nil
}

// saveBalances writes the balances the ledger engine changed back to
// the database: the affected account and, if set, the affected
// envelope.
func saveBalances(tx *gorm.DB, s *ledger.Snapshot, accountID uuid.UUID, envelopeID *uuid.UUID) error {
	if account := s.Account(accountID); account != nil {
		err := tx.Model(&Account{}).Where("id = ?", account.ID).Update("balance", account.Balance).Error
		if err != nil {
			return err
		}
	}

	if envelopeID != nil {
		if envelope := s.Envelope(*envelopeID); envelope != nil {
			err := tx.Model(&Envelope{}).Where("id = ?", envelope.ID).Update("balance", envelope.Balance).Error
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// CreateTransaction runs a transaction through the ledger engine and
// persists the result: the new log entry plus the balance changes it
// caused, atomically.
func CreateTransaction(db *gorm.DB, transaction Transaction) (Transaction, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		snapshot, err := LoadSnapshot(tx)
		if err != nil {
			return err
		}

		if transaction.ID == uuid.Nil {
			transaction.ID = uuid.New()
		}

		if transaction.Date.IsZero() {
			transaction.Date = time.Now().In(time.UTC)
		}

		if err := snapshot.Apply(transaction.Ledger()); err != nil {
			return err
		}

		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}

		return saveBalances(tx, snapshot, transaction.AccountID, transaction.EnvelopeID)
	})
	if err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}

// DeleteTransaction reverses the effect the transaction had when it was
// created and removes it from the log, atomically. The reversal uses
// the stored transaction, not current request state, so it stays exact
// even after renames or balance edits.
func DeleteTransaction(db *gorm.DB, id uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var transaction Transaction
		if err := tx.First(&transaction, id).Error; err != nil {
			return err
		}

		snapshot, err := LoadSnapshot(tx)
		if err != nil {
			return err
		}

		if err := snapshot.Reverse(id); err != nil {
			return err
		}

		if err := tx.Delete(&transaction).Error; err != nil {
			return err
		}

		return saveBalances(tx, snapshot, transaction.AccountID, transaction.EnvelopeID)
	})
}

// Allocate records an allocation transaction moving money from the
// account's unallocated pool into the envelope.
func Allocate(db *gorm.DB, amount decimal.Decimal, envelopeID, accountID uuid.UUID) (Transaction, error) {
	var transaction Transaction

	err := db.Transaction(func(tx *gorm.DB) error {
		snapshot, err := LoadSnapshot(tx)
		if err != nil {
			return err
		}

		allocation, err := snapshot.Allocate(amount, envelopeID, accountID, time.Now().In(time.UTC))
		if err != nil {
			return err
		}

		transaction = newTransaction(allocation)
		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}

		return saveBalances(tx, snapshot, accountID, &envelopeID)
	})
	if err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}

// MoveMoney moves money between two envelopes without recording a
// transaction.
func MoveMoney(db *gorm.DB, amount decimal.Decimal, fromID, toID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		snapshot, err := LoadSnapshot(tx)
		if err != nil {
			return err
		}

		if err := snapshot.MoveMoney(amount, fromID, toID); err != nil {
			return err
		}

		for _, id := range []uuid.UUID{fromID, toID} {
			envelope := snapshot.Envelope(id)
			err := tx.Model(&Envelope{}).Where("id = ?", id).Update("balance", envelope.Balance).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
