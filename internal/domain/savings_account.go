package domain

import "github.com/shopspring/decimal"

// SavingsMinimumBalance is the floor a savings withdrawal may not cross.
var SavingsMinimumBalance = decimal.NewFromInt(100)

var hundred = decimal.NewFromInt(100)

// SavingsAccount accrues interest and refuses withdrawals that would leave
// less than SavingsMinimumBalance.
type SavingsAccount struct {
	baseAccount
	interestRate decimal.Decimal // percent
}

func NewSavingsAccount(number, customerName string, initialBalance, interestRate decimal.Decimal) *SavingsAccount {
	return &SavingsAccount{
		baseAccount:  newBaseAccount(number, customerName, initialBalance),
		interestRate: interestRate,
	}
}

func (a *SavingsAccount) Kind() AccountKind { return AccountKindSavings }

func (a *SavingsAccount) InterestRate() decimal.Decimal { return a.interestRate }

// CalculateInterest returns the interest the current balance would earn. It does not mutate.
func (a *SavingsAccount) CalculateInterest() decimal.Decimal {
	return a.Balance().Mul(a.interestRate.Div(hundred))
}

// ApplyInterest credits CalculateInterest to the balance.
func (a *SavingsAccount) ApplyInterest() Event {
	interest := a.CalculateInterest()
	a.setBalance(a.Balance().Add(interest))
	a.logTransaction(TransactionTypeInterest, interest)
	return a.event(EventInterestApplied, AccountKindSavings, interest)
}

func (a *SavingsAccount) Deposit(amount decimal.Decimal) (Event, error) {
	return a.deposit(AccountKindSavings, amount)
}

// Withdraw takes amount out of the account. A withdrawal that would breach the
// minimum balance is not an error: it yields a single EventWithdrawalRefused and
// leaves balance and log untouched.
func (a *SavingsAccount) Withdraw(amount decimal.Decimal) ([]Event, error) {
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	if a.Balance().Sub(amount).LessThan(SavingsMinimumBalance) {
		ev := a.event(EventWithdrawalRefused, AccountKindSavings, amount)
		ev.Threshold = SavingsMinimumBalance
		return []Event{ev}, nil
	}

	a.setBalance(a.Balance().Sub(amount))
	a.logTransaction(TransactionTypeWithdrawal, amount)
	return []Event{a.event(EventWithdrawn, AccountKindSavings, amount)}, nil
}

func (a *SavingsAccount) Info() AccountInfo {
	info := a.info(AccountKindSavings, "Savings Account")
	info.InterestRate = a.interestRate
	info.MinimumBalance = SavingsMinimumBalance
	return info
}
