package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountKind distinguishes the account variants.
type AccountKind string

const (
	AccountKindChecking AccountKind = "checking"
	AccountKindSavings  AccountKind = "savings"
)

// Account is the behaviour shared by every account variant.
type Account interface {
	Number() string
	CustomerName() string
	Kind() AccountKind
	Balance() decimal.Decimal
	Transactions() []Transaction
	Deposit(amount decimal.Decimal) (Event, error)
	Withdraw(amount decimal.Decimal) ([]Event, error)
	Info() AccountInfo
}

// AccountInfo is the displayable state of an account.
type AccountInfo struct {
	Number       string          `json:"account_number"`
	CustomerName string          `json:"customer_name"`
	Kind         AccountKind     `json:"kind"`
	TypeLabel    string          `json:"account_type"`
	Balance      decimal.Decimal `json:"balance"`

	// Checking only.
	OverdraftLimit decimal.Decimal `json:"overdraft_limit"`
	TransactionFee decimal.Decimal `json:"transaction_fee"`

	// Savings only.
	InterestRate   decimal.Decimal `json:"interest_rate"`
	MinimumBalance decimal.Decimal `json:"minimum_balance"`
}

// baseAccount holds the state every variant owns: identity, balance and the
// append-only transaction log.
type baseAccount struct {
	number       string
	customerName string
	balance      decimal.Decimal
	log          []Transaction
	now          func() time.Time
}

func newBaseAccount(number, customerName string, initialBalance decimal.Decimal) baseAccount {
	return baseAccount{
		number:       number,
		customerName: customerName,
		balance:      initialBalance,
		now:          time.Now,
	}
}

func (a *baseAccount) Number() string { return a.number }

func (a *baseAccount) CustomerName() string { return a.customerName }

func (a *baseAccount) Balance() decimal.Decimal { return a.balance }

// Transactions returns a copy of the log in chronological order.
func (a *baseAccount) Transactions() []Transaction {
	out := make([]Transaction, len(a.log))
	copy(out, a.log)
	return out
}

func (a *baseAccount) setBalance(balance decimal.Decimal) {
	a.balance = balance
}

func (a *baseAccount) logTransaction(txType TransactionType, amount decimal.Decimal) {
	a.log = append(a.log, Transaction{
		ID:     uuid.New(),
		Type:   txType,
		Amount: amount,
		Time:   a.now(),
	})
}

func (a *baseAccount) deposit(kind AccountKind, amount decimal.Decimal) (Event, error) {
	if !amount.IsPositive() {
		return Event{}, ErrNonPositiveAmount
	}
	a.setBalance(a.balance.Add(amount))
	a.logTransaction(TransactionTypeDeposit, amount)
	return a.event(EventDeposited, kind, amount), nil
}

func (a *baseAccount) event(kind EventKind, accountKind AccountKind, amount decimal.Decimal) Event {
	return Event{
		Kind:          kind,
		AccountNumber: a.number,
		AccountKind:   accountKind,
		Amount:        amount,
		Balance:       a.balance,
	}
}

func (a *baseAccount) info(kind AccountKind, label string) AccountInfo {
	return AccountInfo{
		Number:       a.number,
		CustomerName: a.customerName,
		Kind:         kind,
		TypeLabel:    label,
		Balance:      a.balance,
	}
}
