package domain

import "github.com/shopspring/decimal"

// CheckingTransactionFee is charged on every successful checking withdrawal.
var CheckingTransactionFee = decimal.RequireFromString("1.50")

// CheckingAccount allows withdrawals into a bounded overdraft and charges a
// fixed fee per withdrawal.
type CheckingAccount struct {
	baseAccount
	overdraftLimit decimal.Decimal
}

// NewCheckingAccount opens a checking account. The overdraft limit must not be negative.
func NewCheckingAccount(number, customerName string, initialBalance, overdraftLimit decimal.Decimal) (*CheckingAccount, error) {
	if overdraftLimit.IsNegative() {
		return nil, ErrNegativeOverdraftLimit
	}
	return &CheckingAccount{
		baseAccount:    newBaseAccount(number, customerName, initialBalance),
		overdraftLimit: overdraftLimit,
	}, nil
}

func (a *CheckingAccount) Kind() AccountKind { return AccountKindChecking }

func (a *CheckingAccount) OverdraftLimit() decimal.Decimal { return a.overdraftLimit }

// SetOverdraftLimit replaces the overdraft limit. A negative limit is rejected
// and the current one is kept.
func (a *CheckingAccount) SetOverdraftLimit(limit decimal.Decimal) (Event, error) {
	if limit.IsNegative() {
		return Event{}, ErrNegativeOverdraftLimit
	}
	a.overdraftLimit = limit
	ev := a.event(EventOverdraftLimitChanged, AccountKindChecking, limit)
	ev.Threshold = limit
	return ev, nil
}

func (a *CheckingAccount) Deposit(amount decimal.Decimal) (Event, error) {
	return a.deposit(AccountKindChecking, amount)
}

// Withdraw takes amount out of the account, dipping into the overdraft when the
// balance alone does not cover it, then charges CheckingTransactionFee.
//
// The overdraft limit bounds the principal only: the fee is always charged and
// may leave the balance below -OverdraftLimit.
func (a *CheckingAccount) Withdraw(amount decimal.Decimal) ([]Event, error) {
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	balance := a.Balance()
	var overdraftUsed decimal.Decimal
	switch {
	case amount.LessThanOrEqual(balance):
		a.setBalance(balance.Sub(amount))
	case amount.LessThanOrEqual(balance.Add(a.overdraftLimit)):
		overdraftUsed = amount.Sub(balance)
		a.setBalance(overdraftUsed.Neg())
	default:
		return nil, ErrInsufficientFunds
	}
	events := []Event{a.event(EventWithdrawn, AccountKindChecking, amount)}

	a.setBalance(a.Balance().Sub(CheckingTransactionFee))
	events = append(events, a.event(EventFeeCharged, AccountKindChecking, CheckingTransactionFee))

	a.logTransaction(TransactionTypeWithdrawal, amount)
	a.logTransaction(TransactionTypeFee, CheckingTransactionFee)

	if overdraftUsed.IsPositive() {
		events = append(events, a.event(EventOverdrawn, AccountKindChecking, overdraftUsed))
	}
	return events, nil
}

func (a *CheckingAccount) Info() AccountInfo {
	info := a.info(AccountKindChecking, "Checking Account")
	info.OverdraftLimit = a.overdraftLimit
	info.TransactionFee = CheckingTransactionFee
	return info
}
