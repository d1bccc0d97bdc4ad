package domain

import "github.com/shopspring/decimal"

// EventKind identifies what an account operation did.
type EventKind string

const (
	EventDeposited             EventKind = "deposited"
	EventWithdrawn             EventKind = "withdrawn"
	EventFeeCharged            EventKind = "fee_charged"
	EventOverdrawn             EventKind = "overdrawn"
	EventWithdrawalRefused     EventKind = "withdrawal_refused"
	EventInterestApplied       EventKind = "interest_applied"
	EventOverdraftLimitChanged EventKind = "overdraft_limit_changed"
)

// Event describes the outcome of an account operation. Domain code never prints;
// presenters render events instead.
type Event struct {
	Kind          EventKind       `json:"kind"`
	AccountNumber string          `json:"account_number"`
	AccountKind   AccountKind     `json:"account_kind"`
	Amount        decimal.Decimal `json:"amount"`
	// Balance is the account balance after the operation.
	Balance decimal.Decimal `json:"balance"`
	// Threshold carries the minimum balance for refusals and the new limit for overdraft changes.
	Threshold decimal.Decimal `json:"threshold"`
}
