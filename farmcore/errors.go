package farmcore

import "github.com/pkg/errors"

var (
	ErrNoPayments        = errors.New("merge requires at least one payment")
	ErrZeroAmount        = errors.New("payment amount is 0")
	ErrOwnerMixed        = errors.New("merge payments have different original owners")
	ErrLedgerBehind      = errors.New("reward per share is behind the position entry")
	ErrInsufficientSlice = errors.New("slice amount exceeds position amount")
)
