package domain

import "github.com/shopspring/decimal"

// OperationType names a scripted account operation.
type OperationType string

const (
	OperationDeposit           OperationType = "deposit"
	OperationWithdraw          OperationType = "withdraw"
	OperationApplyInterest     OperationType = "apply_interest"
	OperationSetOverdraftLimit OperationType = "set_overdraft_limit"
	OperationDisplay           OperationType = "display"
)

// Operation is one line of an operation script.
type Operation struct {
	Line          int             `json:"line"`
	AccountNumber string          `json:"account_number"`
	Type          OperationType   `json:"operation"`
	Amount        decimal.Decimal `json:"amount"`
}
