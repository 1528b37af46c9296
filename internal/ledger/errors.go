package ledger

import "errors"

var (
	// Validation errors. The transaction is rejected and the snapshot is
	// left untouched.
	ErrAmountNotPositive      = errors.New("the amount must be a positive number")
	ErrCategoryMissing        = errors.New("the category must be set")
	ErrAccountMissing         = errors.New("the account must be set")
	ErrTransactionTypeInvalid = errors.New("the transaction type is invalid")

	// Reference errors. The referenced resource does not exist in the
	// snapshot.
	ErrAccountNotFound     = errors.New("there is no account matching this ID")
	ErrEnvelopeNotFound    = errors.New("there is no envelope matching this ID")
	ErrTransactionNotFound = errors.New("there is no transaction matching this ID")

	// Allocation errors.
	ErrAccountNotAllocatable = errors.New("only checking accounts hold unallocated money")
	ErrNoUnallocatedFunds    = errors.New("the account has no unallocated money this month")

	// ErrInsufficientFunds is returned by MoveMoney when the source
	// envelope balance is lower than the requested amount.
	ErrInsufficientFunds = errors.New("insufficient funds in the source envelope")
)
