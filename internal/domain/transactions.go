package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType labels a balance-affecting record in an account's log.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypeFee        TransactionType = "FEE"
	TransactionTypeInterest   TransactionType = "INTEREST"
)

// Transaction is a single entry of an account's transaction log.
type Transaction struct {
	ID     uuid.UUID       `json:"id"`
	Type   TransactionType `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Time   time.Time       `json:"time"`
}
