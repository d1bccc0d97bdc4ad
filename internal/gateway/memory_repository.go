package gateway

import (
	"context"
	"fmt"

	"mini-bank/internal/domain"
)

// MemoryAccountRepository keeps accounts in process memory, in the order they were opened.
type MemoryAccountRepository struct {
	accounts map[string]domain.Account
	order    []string
}

// NewMemoryAccountRepository creates an empty repository.
func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{accounts: make(map[string]domain.Account)}
}

func (r *MemoryAccountRepository) Create(ctx context.Context, account domain.Account) error {
	if _, ok := r.accounts[account.Number()]; ok {
		return fmt.Errorf("%s: %w", account.Number(), domain.ErrAccountExists)
	}
	r.accounts[account.Number()] = account
	r.order = append(r.order, account.Number())
	return nil
}

func (r *MemoryAccountRepository) Get(ctx context.Context, number string) (domain.Account, error) {
	acc, ok := r.accounts[number]
	if !ok {
		return nil, fmt.Errorf("%s: %w", number, domain.ErrAccountNotFound)
	}
	return acc, nil
}

func (r *MemoryAccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(r.order))
	for _, number := range r.order {
		out = append(out, r.accounts[number])
	}
	return out, nil
}
