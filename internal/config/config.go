package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"PayoffPilot/internal/model"
)

// Date is an ISO-8601 calendar date. Parsing is schema-driven: only fields
// declared as Date are parsed as dates, and only in 2006-01-02 form.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	return d.parse(s)
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	return d.parse(s)
}

func (d *Date) parse(s string) error {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// StrategySpec is the raw strategy record from the config file. The investing
// share is optional; when absent (or zero) it is derived so the three shares
// sum to 100.
type StrategySpec struct {
	HomeLoan    float64  `json:"home_loan" yaml:"home_loan"`
	StudentLoan float64  `json:"student_loan" yaml:"student_loan"`
	Investing   *float64 `json:"investing,omitempty" yaml:"investing,omitempty"`
}

// Build validates the spec and returns the immutable strategy.
func (s StrategySpec) Build() (model.Strategy, error) {
	if s.Investing != nil && *s.Investing != 0 {
		return model.NewStrategyWithInvesting(s.HomeLoan, s.StudentLoan, *s.Investing)
	}
	return model.NewStrategy(s.HomeLoan, s.StudentLoan)
}

// Config holds all application configuration.
type Config struct {
	InitialConditions model.InitialConditions `json:"initial_conditions" yaml:"initial_conditions"`
	Strategies        []StrategySpec          `json:"strategies" yaml:"strategies"`
	StartDate         Date                    `json:"start_date" yaml:"start_date"`
	EndDate           Date                    `json:"end_date" yaml:"end_date"`
	Output            struct {
		Dir string `json:"dir" yaml:"dir"`
	} `json:"output" yaml:"output"`
	Database struct {
		SQLitePath string `json:"sqlite_path" yaml:"sqlite_path"`
	} `json:"database" yaml:"database"`
	Schedule struct {
		RecheckCron string `json:"recheck_cron" yaml:"recheck_cron"`
	} `json:"schedule" yaml:"schedule"`
}

// Load reads config from a JSON or YAML file (by extension), then applies
// environment variable overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse yaml config: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse json config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("RECHECK_CRON"); v != "" {
		cfg.Schedule.RecheckCron = v
	}

	// Defaults
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "results"
	}
	if cfg.Schedule.RecheckCron == "" {
		cfg.Schedule.RecheckCron = "0 0 6 * * 1"
	}

	return cfg, nil
}

// Validate checks the loaded config before any simulation day runs.
func (c *Config) Validate() error {
	if c.StartDate.IsZero() {
		return fmt.Errorf("start_date is required")
	}
	if c.EndDate.IsZero() {
		return fmt.Errorf("end_date is required")
	}
	if c.EndDate.Before(c.StartDate.Time) {
		return fmt.Errorf("end_date %s is before start_date %s",
			c.EndDate.Format(time.DateOnly), c.StartDate.Format(time.DateOnly))
	}
	if len(c.Strategies) == 0 {
		return fmt.Errorf("at least one strategy is required")
	}
	for i, spec := range c.Strategies {
		if _, err := spec.Build(); err != nil {
			return fmt.Errorf("strategies[%d]: %w", i, err)
		}
	}

	ic := c.InitialConditions
	for _, check := range []struct {
		name  string
		value float64
	}{
		{"home_loan_initial_balance", ic.HomeLoanInitialBalance},
		{"home_loan_interest_rate", ic.HomeLoanInterestRate},
		{"home_loan_minimum_repayment", ic.HomeLoanMinimumRepayment},
		{"student_loan", ic.StudentLoan},
		{"student_loan_indexation_rate", ic.StudentLoanIndexationRate},
		{"fortnightly_student_loan_tax", ic.FortnightlyStudentLoanTax},
		{"initial_fortnightly_spare_cash", ic.InitialFortnightlySpareCash},
		{"wage_growth_rate", ic.WageGrowthRate},
		{"investment_growth_rate", ic.InvestmentGrowthRate},
		{"investment_distribution_rate", ic.InvestmentDistributionRate},
	} {
		if check.value < 0 {
			return fmt.Errorf("initial_conditions.%s must be non-negative", check.name)
		}
	}

	return nil
}

// BuildStrategies constructs every configured strategy.
func (c *Config) BuildStrategies() ([]model.Strategy, error) {
	strategies := make([]model.Strategy, 0, len(c.Strategies))
	for i, spec := range c.Strategies {
		strat, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("strategies[%d]: %w", i, err)
		}
		strategies = append(strategies, strat)
	}
	return strategies, nil
}
