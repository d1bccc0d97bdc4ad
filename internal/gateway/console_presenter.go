package gateway

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"mini-bank/internal/domain"
)

// ConsolePresenter renders account events as human-readable status lines.
type ConsolePresenter struct {
	out io.Writer
}

// NewConsolePresenter creates a presenter writing to out.
func NewConsolePresenter(out io.Writer) *ConsolePresenter {
	return &ConsolePresenter{out: out}
}

// PresentEvents writes one line per event.
func (p *ConsolePresenter) PresentEvents(ctx context.Context, events []domain.Event) error {
	var b strings.Builder
	for _, ev := range events {
		b.WriteString(formatEvent(ev))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(p.out, b.String())
	return err
}

// PresentInfo writes the account details block.
func (p *ConsolePresenter) PresentInfo(ctx context.Context, info domain.AccountInfo) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Account Number: %s\n", info.Number)
	fmt.Fprintf(&b, "Customer Name: %s\n", info.CustomerName)
	fmt.Fprintf(&b, "Balance: %s\n", money(info.Balance))
	fmt.Fprintf(&b, "Account Type: %s\n", info.TypeLabel)
	switch info.Kind {
	case domain.AccountKindChecking:
		fmt.Fprintf(&b, "Overdraft Limit: %s\n", money(info.OverdraftLimit))
		fmt.Fprintf(&b, "Transaction Fee: %s\n", money(info.TransactionFee))
	case domain.AccountKindSavings:
		fmt.Fprintf(&b, "Interest Rate: %s%%\n", info.InterestRate)
		fmt.Fprintf(&b, "Minimum Balance Requirement: %s\n", money(info.MinimumBalance))
	}
	_, err := io.WriteString(p.out, b.String())
	return err
}

func formatEvent(ev domain.Event) string {
	switch ev.Kind {
	case domain.EventDeposited:
		return fmt.Sprintf("Deposited %s into %s account", money(ev.Amount), ev.AccountKind)
	case domain.EventWithdrawn:
		return fmt.Sprintf("Withdrew %s from %s account", money(ev.Amount), ev.AccountKind)
	case domain.EventFeeCharged:
		return fmt.Sprintf("Transaction fee: %s", money(ev.Amount))
	case domain.EventOverdrawn:
		return fmt.Sprintf("Account is in overdraft. Current balance: %s", money(ev.Balance))
	case domain.EventWithdrawalRefused:
		return fmt.Sprintf("Cannot withdraw %s. Minimum balance of %s must be maintained.", money(ev.Amount), money(ev.Threshold))
	case domain.EventInterestApplied:
		return fmt.Sprintf("Interest applied: %s", money(ev.Amount))
	case domain.EventOverdraftLimitChanged:
		return fmt.Sprintf("Overdraft limit updated to %s", money(ev.Threshold))
	default:
		return fmt.Sprintf("%s: %s on %s", ev.Kind, money(ev.Amount), ev.AccountNumber)
	}
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
