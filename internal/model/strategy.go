package model

import (
	"fmt"
	"strings"
)

// Strategy is an allocation of fortnightly spare cash across the three goals.
// Percentages always sum to 100; the investing share is derived from the two
// debt shares unless explicitly supplied. A Strategy is immutable once built —
// when the effective split changes mid-run a new Strategy is constructed.
type Strategy struct {
	HomeLoan    float64 `json:"home_loan" yaml:"home_loan"`
	StudentLoan float64 `json:"student_loan" yaml:"student_loan"`
	Investing   float64 `json:"investing" yaml:"investing"`
}

// NewStrategy builds a Strategy with the investing share derived as
// 100 - (homeLoan + studentLoan). Fails if the derived share falls outside
// [0, 100].
func NewStrategy(homeLoan, studentLoan float64) (Strategy, error) {
	return NewStrategyWithInvesting(homeLoan, studentLoan, 100.0-(homeLoan+studentLoan))
}

// NewStrategyWithInvesting builds a Strategy with an explicit investing share.
func NewStrategyWithInvesting(homeLoan, studentLoan, investing float64) (Strategy, error) {
	if investing < 0 || investing > 100 {
		return Strategy{}, fmt.Errorf(
			"invalid strategy: shares must be percentages summing to at most 100, got home_loan=%g student_loan=%g",
			homeLoan, studentLoan)
	}
	return Strategy{HomeLoan: homeLoan, StudentLoan: studentLoan, Investing: investing}, nil
}

// OutputName returns a filesystem-safe label for this strategy, used to name
// its per-run output directory.
func (s Strategy) OutputName() string {
	name := fmt.Sprintf("home_%g_student_%g_investing_%g", s.HomeLoan, s.StudentLoan, s.Investing)
	name = strings.ReplaceAll(name, ":", "_")
	return strings.ReplaceAll(name, " ", "_")
}

func (s Strategy) String() string {
	return fmt.Sprintf("home=%g%% student=%g%% investing=%g%%", s.HomeLoan, s.StudentLoan, s.Investing)
}
