package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every error caused by a bad caller-supplied value.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrNonPositiveAmount      = fmt.Errorf("%w: amount must be positive", ErrInvalidArgument)
	ErrNegativeOverdraftLimit = fmt.Errorf("%w: overdraft limit cannot be negative", ErrInvalidArgument)
	ErrInsufficientFunds      = fmt.Errorf("%w: insufficient funds, including overdraft protection", ErrInvalidArgument)
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountExists        = errors.New("account already exists")
	ErrUnsupportedOperation = errors.New("operation not supported by account type")
)
