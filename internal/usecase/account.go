package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"mini-bank/internal/domain"
)

// AccountUseCase orchestrates account operations.
type AccountUseCase struct {
	repo      AccountRepository
	presenter EventPresenter
	source    OperationSource
	logger    zerolog.Logger
}

// NewAccountUseCase creates a new instance of the usecase.
func NewAccountUseCase(repo AccountRepository, presenter EventPresenter, source OperationSource, logger zerolog.Logger) *AccountUseCase {
	return &AccountUseCase{
		repo:      repo,
		presenter: presenter,
		source:    source,
		logger:    logger,
	}
}

// OpenChecking opens and stores a checking account.
func (uc *AccountUseCase) OpenChecking(ctx context.Context, number, customerName string, initialBalance, overdraftLimit decimal.Decimal) (*domain.CheckingAccount, error) {
	acc, err := domain.NewCheckingAccount(number, customerName, initialBalance, overdraftLimit)
	if err != nil {
		return nil, fmt.Errorf("could not open checking account %s: %w", number, err)
	}
	if err := uc.repo.Create(ctx, acc); err != nil {
		return nil, fmt.Errorf("could not store checking account %s: %w", number, err)
	}
	uc.logger.Info().Str("account", number).Str("kind", string(acc.Kind())).Stringer("balance", initialBalance).Msg("account opened")
	return acc, nil
}

// OpenSavings opens and stores a savings account.
func (uc *AccountUseCase) OpenSavings(ctx context.Context, number, customerName string, initialBalance, interestRate decimal.Decimal) (*domain.SavingsAccount, error) {
	acc := domain.NewSavingsAccount(number, customerName, initialBalance, interestRate)
	if err := uc.repo.Create(ctx, acc); err != nil {
		return nil, fmt.Errorf("could not store savings account %s: %w", number, err)
	}
	uc.logger.Info().Str("account", number).Str("kind", string(acc.Kind())).Stringer("balance", initialBalance).Msg("account opened")
	return acc, nil
}

// Deposit credits amount to the account.
func (uc *AccountUseCase) Deposit(ctx context.Context, number string, amount decimal.Decimal) error {
	acc, err := uc.account(ctx, number)
	if err != nil {
		return err
	}
	ev, err := acc.Deposit(amount)
	if err != nil {
		return fmt.Errorf("deposit to %s failed: %w", number, err)
	}
	return uc.present(ctx, ev)
}

// Withdraw applies the account type's withdrawal rules. A refused savings
// withdrawal is reported through the presenter, not as an error.
func (uc *AccountUseCase) Withdraw(ctx context.Context, number string, amount decimal.Decimal) ([]domain.Event, error) {
	acc, err := uc.account(ctx, number)
	if err != nil {
		return nil, err
	}
	events, err := acc.Withdraw(amount)
	if err != nil {
		return nil, fmt.Errorf("withdrawal from %s failed: %w", number, err)
	}
	return events, uc.present(ctx, events...)
}

// ApplyInterest credits interest to a savings account.
func (uc *AccountUseCase) ApplyInterest(ctx context.Context, number string) error {
	acc, err := uc.account(ctx, number)
	if err != nil {
		return err
	}
	savings, ok := acc.(*domain.SavingsAccount)
	if !ok {
		return fmt.Errorf("apply interest to %s (%s): %w", number, acc.Kind(), domain.ErrUnsupportedOperation)
	}
	return uc.present(ctx, savings.ApplyInterest())
}

// SetOverdraftLimit replaces the overdraft limit of a checking account.
func (uc *AccountUseCase) SetOverdraftLimit(ctx context.Context, number string, limit decimal.Decimal) error {
	acc, err := uc.account(ctx, number)
	if err != nil {
		return err
	}
	checking, ok := acc.(*domain.CheckingAccount)
	if !ok {
		return fmt.Errorf("set overdraft limit on %s (%s): %w", number, acc.Kind(), domain.ErrUnsupportedOperation)
	}
	ev, err := checking.SetOverdraftLimit(limit)
	if err != nil {
		return fmt.Errorf("set overdraft limit on %s failed: %w", number, err)
	}
	return uc.present(ctx, ev)
}

// Display renders the account's details.
func (uc *AccountUseCase) Display(ctx context.Context, number string) error {
	acc, err := uc.account(ctx, number)
	if err != nil {
		return err
	}
	return uc.presenter.PresentInfo(ctx, acc.Info())
}

// Execute dispatches a single scripted operation.
func (uc *AccountUseCase) Execute(ctx context.Context, op domain.Operation) ([]domain.Event, error) {
	uc.logger.Debug().Int("line", op.Line).Str("account", op.AccountNumber).Str("operation", string(op.Type)).Stringer("amount", op.Amount).Msg("executing operation")

	switch op.Type {
	case domain.OperationWithdraw:
		return uc.Withdraw(ctx, op.AccountNumber, op.Amount)
	case domain.OperationDeposit:
		return nil, uc.Deposit(ctx, op.AccountNumber, op.Amount)
	case domain.OperationApplyInterest:
		return nil, uc.ApplyInterest(ctx, op.AccountNumber)
	case domain.OperationSetOverdraftLimit:
		return nil, uc.SetOverdraftLimit(ctx, op.AccountNumber, op.Amount)
	case domain.OperationDisplay:
		return nil, uc.Display(ctx, op.AccountNumber)
	default:
		return nil, fmt.Errorf("unknown operation %q: %w", op.Type, domain.ErrInvalidArgument)
	}
}

// Run executes every operation of the script at path in order and reports the
// resulting balances. Rejected operations are recorded and do not stop the run.
func (uc *AccountUseCase) Run(ctx context.Context, path string) (*domain.StatementReport, error) {
	ops, err := uc.source.GetOperations(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not get operations: %w", err)
	}

	report := domain.StatementReport{
		Failures: make([]domain.OperationFailure, 0),
	}
	for _, op := range ops {
		report.Summary.OperationsProcessed++
		events, err := uc.Execute(ctx, op)
		if err != nil {
			if !isRejection(err) {
				return nil, fmt.Errorf("operation on line %d: %w", op.Line, err)
			}
			uc.logger.Warn().Err(err).Int("line", op.Line).Str("account", op.AccountNumber).Msg("operation rejected")
			report.Summary.OperationsFailed++
			report.Failures = append(report.Failures, domain.OperationFailure{Operation: op, Error: err.Error()})
			continue
		}
		report.Summary.OperationsSucceeded++
		for _, ev := range events {
			if ev.Kind == domain.EventWithdrawalRefused {
				report.Summary.WithdrawalsRefused++
			}
		}
	}

	accounts, err := uc.Report(ctx)
	if err != nil {
		return nil, err
	}
	report.Accounts = accounts
	return &report, nil
}

// Report returns the balance report of every stored account.
func (uc *AccountUseCase) Report(ctx context.Context) ([]domain.AccountReport, error) {
	accounts, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list accounts: %w", err)
	}
	reports := make([]domain.AccountReport, 0, len(accounts))
	for _, acc := range accounts {
		reports = append(reports, domain.NewAccountReport(acc))
	}
	return reports, nil
}

func (uc *AccountUseCase) account(ctx context.Context, number string) (domain.Account, error) {
	acc, err := uc.repo.Get(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("could not get account %s: %w", number, err)
	}
	return acc, nil
}

func (uc *AccountUseCase) present(ctx context.Context, events ...domain.Event) error {
	if err := uc.presenter.PresentEvents(ctx, events); err != nil {
		return fmt.Errorf("could not present events: %w", err)
	}
	return nil
}

// isRejection reports whether err is a business failure of a single operation
// rather than an infrastructure failure.
func isRejection(err error) bool {
	return errors.Is(err, domain.ErrInvalidArgument) ||
		errors.Is(err, domain.ErrAccountNotFound) ||
		errors.Is(err, domain.ErrUnsupportedOperation)
}
