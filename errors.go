package daftar

import "errors"

// Domain errors returned by the book. Validation errors are detected before
// any state mutation, so a caller may correct the input and retry.
var (
	// ErrInvalidAmount reports a non-numeric amount, or an amount that is not
	// strictly positive where a positive one is required.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrDuplicateAccount reports an attempt to open an account under a name
	// that is already taken.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrAccountNotFound reports a reference to an unknown account name.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds reports a withdrawal that would drive the account
	// balance below zero. The balance is left untouched.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrTransactionNotFound reports a reference to an unknown transaction id.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrPersistence wraps a failure to write a snapshot. The in-memory
	// tables remain authoritative; the write is not retried, since retrying a
	// half-written snapshot risks clobbering the last good one.
	ErrPersistence = errors.New("persistence failure")
)
