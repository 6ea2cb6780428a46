package utils

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("e-mail already in use")
	ErrInvalidCredentials = errors.New("email or password incorrect")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountNotFound    = errors.New("bank account not found")
	ErrBankNotLinked      = errors.New("no bank account linked")
	ErrNoPayoutAddress    = errors.New("no payout address provisioned")

	ErrInsufficientBankFunds = errors.New("bank account balance insufficient to make the purchase")
	ErrInsufficientNodeFunds = errors.New("insufficient balance to make the purchase")

	ErrDatabaseError = errors.New("database error")
)
