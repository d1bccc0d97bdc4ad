package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"mini-bank/internal/config"
	"mini-bank/internal/domain"
	"mini-bank/internal/gateway"
	"mini-bank/internal/usecase"
)

func main() {
	// Define command-line flags
	configFile := flag.String("config", "", "Path to the YAML account configuration file (required)")
	opsFile := flag.String("ops", "", "Path to a CSV operation script (account,operation,amount)")
	flag.Parse()

	// Validate required flags
	if *configFile == "" {
		fmt.Println("Error: the -config flag is required.")
		flag.Usage()
		os.Exit(1)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load configuration")
	}
	level, _ := cfg.Level()
	logger = logger.Level(level)

	// --- Wiring ---
	repo := gateway.NewMemoryAccountRepository()
	presenter := gateway.NewConsolePresenter(os.Stdout)
	source := gateway.NewCSVOperationSource()
	accountUseCase := usecase.NewAccountUseCase(repo, presenter, source, logger)

	ctx := context.Background()
	if err := openAccounts(ctx, accountUseCase, cfg.Accounts); err != nil {
		logger.Fatal().Err(err).Msg("could not open accounts")
	}

	// --- Execute ---
	var report *domain.StatementReport
	if *opsFile != "" {
		report, err = accountUseCase.Run(ctx, *opsFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("operation script failed")
		}
	} else {
		accounts, err := accountUseCase.Report(ctx)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not build report")
		}
		report = &domain.StatementReport{Failures: []domain.OperationFailure{}, Accounts: accounts}
	}

	// --- Present the Output ---
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to generate JSON report")
	}

	fmt.Println(string(output))
}

func openAccounts(ctx context.Context, uc *usecase.AccountUseCase, accounts []config.AccountConfig) error {
	for _, acc := range accounts {
		kind, err := acc.Kind()
		if err != nil {
			return err
		}
		switch kind {
		case domain.AccountKindChecking:
			_, err = uc.OpenChecking(ctx, acc.Number, acc.Customer, acc.Balance(), acc.Overdraft())
		case domain.AccountKindSavings:
			_, err = uc.OpenSavings(ctx, acc.Number, acc.Customer, acc.Balance(), acc.Rate())
		}
		if err != nil {
			return err
		}
	}
	return nil
}
