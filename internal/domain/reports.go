package domain

import "github.com/shopspring/decimal"

// OperationFailure records a scripted operation that was rejected.
type OperationFailure struct {
	Operation Operation `json:"operation"`
	Error     string    `json:"error"`
}

// Summary provides high-level statistics of a script run.
type Summary struct {
	OperationsProcessed int `json:"operations_processed"`
	OperationsSucceeded int `json:"operations_succeeded"`
	OperationsFailed    int `json:"operations_failed"`
	WithdrawalsRefused  int `json:"withdrawals_refused"`
}

// AccountReport is the balance report of a single account.
type AccountReport struct {
	AccountNumber string          `json:"account_number"`
	CustomerName  string          `json:"customer_name"`
	Kind          AccountKind     `json:"kind"`
	Balance       decimal.Decimal `json:"balance"`
	Transactions  []Transaction   `json:"transactions"`
}

// StatementReport is the top-level structure for the final JSON output.
type StatementReport struct {
	Summary  Summary            `json:"summary"`
	Failures []OperationFailure `json:"failures"`
	Accounts []AccountReport    `json:"accounts"`
}

// NewAccountReport snapshots the balance and log of acc.
func NewAccountReport(acc Account) AccountReport {
	return AccountReport{
		AccountNumber: acc.Number(),
		CustomerName:  acc.CustomerName(),
		Kind:          acc.Kind(),
		Balance:       acc.Balance(),
		Transactions:  acc.Transactions(),
	}
}
