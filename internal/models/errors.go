package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAccountTypeInvalid     = errors.New("the account type must be one of checking, savings, retirement, investment, credit")
	ErrTransactionTypeInvalid = errors.New("the transaction type must be one of income, expense, allocation")
)
