package usecase

import (
	"context"

	"mini-bank/internal/domain"
)

// AccountRepository stores accounts by account number.
// The usecase layer depends on these interfaces, not on concrete implementations.
//
//go:generate mockgen -destination=mocks/mock_interface.go -source=interface.go
type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) error
	Get(ctx context.Context, number string) (domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
}

// EventPresenter renders the outcome of account operations.
type EventPresenter interface {
	PresentEvents(ctx context.Context, events []domain.Event) error
	PresentInfo(ctx context.Context, info domain.AccountInfo) error
}

// OperationSource loads a script of account operations.
type OperationSource interface {
	GetOperations(ctx context.Context, path string) ([]domain.Operation, error)
}
