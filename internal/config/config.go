package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"mini-bank/internal/domain"
)

// Config is the CLI configuration file.
type Config struct {
	LogLevel string          `yaml:"log_level"` // "debug", "info", "warn", "error"
	Accounts []AccountConfig `yaml:"accounts"`
}

// AccountConfig describes an account to open at startup. Amounts are decimal strings.
type AccountConfig struct {
	Number         string `yaml:"number"`
	Customer       string `yaml:"customer"`
	Type           string `yaml:"type"` // "checking" or "savings"
	InitialBalance string `yaml:"initial_balance"`
	OverdraftLimit string `yaml:"overdraft_limit"` // checking only
	InterestRate   string `yaml:"interest_rate"`   // savings only
}

// Load reads and validates the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML configuration.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}

	seen := make(map[string]bool, len(cfg.Accounts))
	for i := range cfg.Accounts {
		acc := &cfg.Accounts[i]
		acc.Type = strings.ToLower(strings.TrimSpace(acc.Type))
		if acc.Number == "" {
			return Config{}, fmt.Errorf("accounts[%d]: number is required", i)
		}
		if seen[acc.Number] {
			return Config{}, fmt.Errorf("accounts[%d]: %s: %w", i, acc.Number, domain.ErrAccountExists)
		}
		seen[acc.Number] = true
		if _, err := acc.Kind(); err != nil {
			return Config{}, fmt.Errorf("accounts[%d]: %w", i, err)
		}
		for field, raw := range map[string]string{
			"initial_balance": acc.InitialBalance,
			"overdraft_limit": acc.OverdraftLimit,
			"interest_rate":   acc.InterestRate,
		} {
			if _, err := parseAmount(raw); err != nil {
				return Config{}, fmt.Errorf("accounts[%d].%s: %w", i, field, err)
			}
		}
	}
	return cfg, nil
}

// Level returns the zerolog level named by LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func (a AccountConfig) Kind() (domain.AccountKind, error) {
	switch kind := domain.AccountKind(a.Type); kind {
	case domain.AccountKindChecking, domain.AccountKindSavings:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown account type %q", a.Type)
	}
}

func (a AccountConfig) Balance() decimal.Decimal { return mustAmount(a.InitialBalance) }

func (a AccountConfig) Overdraft() decimal.Decimal { return mustAmount(a.OverdraftLimit) }

func (a AccountConfig) Rate() decimal.Decimal { return mustAmount(a.InterestRate) }

// parseAmount treats an empty string as zero.
func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

// mustAmount is only called on values Parse has already validated.
func mustAmount(raw string) decimal.Decimal {
	d, err := parseAmount(raw)
	if err != nil {
		panic(err)
	}
	return d
}
