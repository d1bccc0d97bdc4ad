package usecase_test

import (
	"context"
	"errors"
	"mini-bank/internal/domain"
	"mini-bank/internal/usecase"
	mock_usecase "mini-bank/internal/usecase/mocks"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	repo      *mock_usecase.MockAccountRepository
	presenter *mock_usecase.MockEventPresenter
	source    *mock_usecase.MockOperationSource
	uc        *usecase.AccountUseCase
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		repo:      mock_usecase.NewMockAccountRepository(ctrl),
		presenter: mock_usecase.NewMockEventPresenter(ctrl),
		source:    mock_usecase.NewMockOperationSource(ctrl),
	}
	f.uc = usecase.NewAccountUseCase(f.repo, f.presenter, f.source, zerolog.Nop())
	return f
}

// withAccounts serves Get and List from the given accounts.
func (f *fixture) withAccounts(accounts ...domain.Account) {
	byNumber := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		byNumber[acc.Number()] = acc
	}
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, number string) (domain.Account, error) {
		acc, ok := byNumber[number]
		if !ok {
			return nil, domain.ErrAccountNotFound
		}
		return acc, nil
	}).AnyTimes()
	f.repo.EXPECT().List(gomock.Any()).Return(accounts, nil).AnyTimes()
}

// recordEvents captures every event handed to the presenter.
func (f *fixture) recordEvents() *[]domain.Event {
	var got []domain.Event
	f.presenter.EXPECT().PresentEvents(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, events []domain.Event) error {
		got = append(got, events...)
		return nil
	}).AnyTimes()
	return &got
}

func TestAccountUseCase_Withdraw(t *testing.T) {
	tests := []struct {
		name        string
		account     func(t *testing.T) domain.Account
		number      string
		amount      string
		wantEvents  []domain.EventKind
		wantBalance string
		wantErr     error
	}{
		{
			name:        "checking into overdraft",
			account:     checking("CHK-1", "100", "50"),
			number:      "CHK-1",
			amount:      "120",
			wantEvents:  []domain.EventKind{domain.EventWithdrawn, domain.EventFeeCharged, domain.EventOverdrawn},
			wantBalance: "-21.50",
		},
		{
			name:        "checking beyond overdraft",
			account:     checking("CHK-1", "100", "50"),
			number:      "CHK-1",
			amount:      "151",
			wantBalance: "100",
			wantErr:     domain.ErrInsufficientFunds,
		},
		{
			name:        "savings refused below minimum",
			account:     savings("SAV-1", "150", "5"),
			number:      "SAV-1",
			amount:      "60",
			wantEvents:  []domain.EventKind{domain.EventWithdrawalRefused},
			wantBalance: "150",
		},
		{
			name:        "savings within minimum",
			account:     savings("SAV-1", "400", "5"),
			number:      "SAV-1",
			amount:      "300",
			wantEvents:  []domain.EventKind{domain.EventWithdrawn},
			wantBalance: "100",
		},
		{
			name:        "non-positive amount",
			account:     savings("SAV-1", "400", "5"),
			number:      "SAV-1",
			amount:      "0",
			wantBalance: "400",
			wantErr:     domain.ErrInvalidArgument,
		},
		{
			name:        "unknown account",
			account:     savings("SAV-1", "400", "5"),
			number:      "SAV-404",
			amount:      "10",
			wantBalance: "400",
			wantErr:     domain.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			acc := tt.account(t)
			f.withAccounts(acc)
			presented := f.recordEvents()

			events, err := f.uc.Withdraw(context.Background(), tt.number, decimal.RequireFromString(tt.amount))

			assert.True(t, decimal.RequireFromString(tt.wantBalance).Equal(acc.Balance()), "balance %s", acc.Balance())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, events)
				assert.Empty(t, *presented)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEvents, kinds(events))
			assert.Equal(t, events, *presented)
		})
	}
}

func TestAccountUseCase_ApplyInterest(t *testing.T) {
	f := newFixture(t)
	sav := savings("SAV-1", "1000", "2")(t)
	chk := checking("CHK-1", "1000", "0")(t)
	f.withAccounts(sav, chk)
	presented := f.recordEvents()
	ctx := context.Background()

	require.NoError(t, f.uc.ApplyInterest(ctx, "SAV-1"))
	assert.True(t, decimal.NewFromInt(1020).Equal(sav.Balance()))
	require.Len(t, *presented, 1)
	assert.Equal(t, domain.EventInterestApplied, (*presented)[0].Kind)

	err := f.uc.ApplyInterest(ctx, "CHK-1")
	assert.ErrorIs(t, err, domain.ErrUnsupportedOperation)
	assert.True(t, decimal.NewFromInt(1000).Equal(chk.Balance()))
	assert.Empty(t, chk.Transactions())
}

func TestAccountUseCase_SetOverdraftLimit(t *testing.T) {
	f := newFixture(t)
	chk := checking("CHK-1", "100", "50")(t).(*domain.CheckingAccount)
	sav := savings("SAV-1", "500", "1")(t)
	f.withAccounts(chk, sav)
	presented := f.recordEvents()
	ctx := context.Background()

	require.NoError(t, f.uc.SetOverdraftLimit(ctx, "CHK-1", decimal.NewFromInt(300)))
	assert.True(t, decimal.NewFromInt(300).Equal(chk.OverdraftLimit()))

	err := f.uc.SetOverdraftLimit(ctx, "CHK-1", decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrNegativeOverdraftLimit)
	assert.True(t, decimal.NewFromInt(300).Equal(chk.OverdraftLimit()))

	err = f.uc.SetOverdraftLimit(ctx, "SAV-1", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrUnsupportedOperation)

	assert.Equal(t, []domain.EventKind{domain.EventOverdraftLimitChanged}, kinds(*presented))
}

func TestAccountUseCase_Display(t *testing.T) {
	f := newFixture(t)
	sav := savings("SAV-1", "150", "5")(t)
	f.withAccounts(sav)

	f.presenter.EXPECT().PresentInfo(gomock.Any(), sav.Info()).Return(nil)

	assert.NoError(t, f.uc.Display(context.Background(), "SAV-1"))
}

func TestAccountUseCase_Deposit_PresenterError(t *testing.T) {
	f := newFixture(t)
	chk := checking("CHK-1", "100", "0")(t)
	f.withAccounts(chk)
	presenterErr := errors.New("stdout closed")
	f.presenter.EXPECT().PresentEvents(gomock.Any(), gomock.Any()).Return(presenterErr)

	err := f.uc.Deposit(context.Background(), "CHK-1", decimal.NewFromInt(25))

	assert.ErrorIs(t, err, presenterErr)
	assert.True(t, decimal.NewFromInt(125).Equal(chk.Balance()))
}

func TestAccountUseCase_Open(t *testing.T) {
	ctx := context.Background()

	t.Run("stores checking account", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		acc, err := f.uc.OpenChecking(ctx, "CHK-1", "Ada", decimal.NewFromInt(100), decimal.NewFromInt(50))
		require.NoError(t, err)
		assert.Equal(t, domain.AccountKindChecking, acc.Kind())
	})

	t.Run("rejects negative overdraft limit without storing", func(t *testing.T) {
		f := newFixture(t)

		acc, err := f.uc.OpenChecking(ctx, "CHK-1", "Ada", decimal.NewFromInt(100), decimal.NewFromInt(-50))
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.Nil(t, acc)
	})

	t.Run("duplicate savings account", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrAccountExists)

		acc, err := f.uc.OpenSavings(ctx, "SAV-1", "Grace", decimal.NewFromInt(100), decimal.NewFromInt(5))
		assert.ErrorIs(t, err, domain.ErrAccountExists)
		assert.Nil(t, acc)
	})
}

func TestAccountUseCase_Run(t *testing.T) {
	const path = "/examples/operations.csv"

	tests := []struct {
		name         string
		ops          []domain.Operation
		sourceErr    error
		wantSummary  domain.Summary
		wantFailures int
		wantBalances map[string]string
		wantErr      bool
	}{
		{
			name: "mixed script",
			ops: []domain.Operation{
				{Line: 2, AccountNumber: "CHK-1", Type: domain.OperationWithdraw, Amount: decimal.NewFromInt(120)},
				{Line: 3, AccountNumber: "SAV-1", Type: domain.OperationWithdraw, Amount: decimal.NewFromInt(60)},
				{Line: 4, AccountNumber: "SAV-1", Type: domain.OperationApplyInterest},
				{Line: 5, AccountNumber: "CHK-1", Type: domain.OperationSetOverdraftLimit, Amount: decimal.NewFromInt(-1)},
				{Line: 6, AccountNumber: "CHK-1", Type: domain.OperationDeposit, Amount: decimal.NewFromInt(50)},
				{Line: 7, AccountNumber: "NOPE", Type: domain.OperationWithdraw, Amount: decimal.NewFromInt(1)},
				{Line: 8, AccountNumber: "CHK-1", Type: domain.OperationWithdraw, Amount: decimal.NewFromInt(500)},
			},
			wantSummary: domain.Summary{
				OperationsProcessed: 7,
				OperationsSucceeded: 4,
				OperationsFailed:    3,
				WithdrawalsRefused:  1,
			},
			wantFailures: 3,
			wantBalances: map[string]string{"CHK-1": "28.50", "SAV-1": "157.50"},
		},
		{
			name:         "empty script",
			ops:          []domain.Operation{},
			wantBalances: map[string]string{"CHK-1": "100", "SAV-1": "150"},
		},
		{
			name:      "source error",
			sourceErr: errors.New("failed to read operations"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.withAccounts(checking("CHK-1", "100", "50")(t), savings("SAV-1", "150", "5")(t))
			f.recordEvents()

			if tt.sourceErr != nil {
				f.source.EXPECT().GetOperations(gomock.Any(), path).Return(nil, tt.sourceErr)
			} else {
				f.source.EXPECT().GetOperations(gomock.Any(), path).Return(tt.ops, nil)
			}

			got, err := f.uc.Run(context.Background(), path)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSummary, got.Summary)
			assert.Len(t, got.Failures, tt.wantFailures)
			require.Len(t, got.Accounts, len(tt.wantBalances))
			for _, acc := range got.Accounts {
				want := decimal.RequireFromString(tt.wantBalances[acc.AccountNumber])
				assert.True(t, want.Equal(acc.Balance), "%s balance %s, want %s", acc.AccountNumber, acc.Balance, want)
			}
		})
	}
}

func TestAccountUseCase_Execute_UnknownOperation(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), domain.Operation{AccountNumber: "CHK-1", Type: "transfer"})

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func checking(number, balance, limit string) func(t *testing.T) domain.Account {
	return func(t *testing.T) domain.Account {
		acc, err := domain.NewCheckingAccount(number, "Ada", decimal.RequireFromString(balance), decimal.RequireFromString(limit))
		require.NoError(t, err)
		return acc
	}
}

func savings(number, balance, rate string) func(t *testing.T) domain.Account {
	return func(t *testing.T) domain.Account {
		return domain.NewSavingsAccount(number, "Grace", decimal.RequireFromString(balance), decimal.RequireFromString(rate))
	}
}

func kinds(events []domain.Event) []domain.EventKind {
	var out []domain.EventKind
	for _, ev := range events {
		out = append(out, ev.Kind)
	}
	return out
}
