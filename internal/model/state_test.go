package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConditions() *InitialConditions {
	return &InitialConditions{
		HomeLoanInitialBalance:      500000,
		HomeLoanInterestRate:        0.06,
		HomeLoanMinimumRepayment:    2000,
		StudentLoan:                 40000,
		StudentLoanIndexationRate:   0.04,
		FortnightlyStudentLoanTax:   150,
		InitialFortnightlySpareCash: 1000,
		WageGrowthRate:              0.03,
		InvestmentGrowthRate:        0.07,
		InvestmentDistributionRate:  0.02,
	}
}

func TestNewSimulationState(t *testing.T) {
	cond := testConditions()
	s := NewSimulationState(cond)

	assert.Equal(t, 500000.0, s.HomeLoanBalance)
	assert.Equal(t, 40000.0, s.StudentLoanBalance)
	assert.Zero(t, s.DistributionBalance)
	assert.Zero(t, s.PortfolioValue)
	assert.Equal(t, 1000.0, s.FortnightlySpareCash)
}

func TestApplyHomeLoanInterest(t *testing.T) {
	cond := testConditions()
	s := NewSimulationState(cond)

	s.ApplyHomeLoanInterest(cond)
	assert.InDelta(t, 502500, s.HomeLoanBalance, 1e-9) // 500000 * 0.06/12
}

func TestApplyMinimumMortgageRepayment(t *testing.T) {
	cond := testConditions()
	s := NewSimulationState(cond)

	s.ApplyMinimumMortgageRepayment(cond)
	assert.Equal(t, 498000.0, s.HomeLoanBalance)

	// Once non-positive, no further repayments.
	s.HomeLoanBalance = 0
	s.ApplyMinimumMortgageRepayment(cond)
	assert.Equal(t, 0.0, s.HomeLoanBalance)

	// An overshoot past zero is kept, not clamped.
	s.HomeLoanBalance = 500
	s.ApplyMinimumMortgageRepayment(cond)
	assert.Equal(t, -1500.0, s.HomeLoanBalance)
	s.ApplyMinimumMortgageRepayment(cond)
	assert.Equal(t, -1500.0, s.HomeLoanBalance)
}

func TestApplyMinimumStudentLoanRepayment(t *testing.T) {
	cond := testConditions()
	s := NewSimulationState(cond)

	s.ApplyMinimumStudentLoanRepayment(cond)
	assert.Equal(t, 40000.0-150*26, s.StudentLoanBalance)

	s.StudentLoanBalance = -10
	s.ApplyMinimumStudentLoanRepayment(cond)
	assert.Equal(t, -10.0, s.StudentLoanBalance)
}

func TestApplyStrategy_BothDebtsOutstanding(t *testing.T) {
	cond := testConditions()
	s := NewSimulationState(cond)

	strat, err := NewStrategy(50, 30)
	require.NoError(t, err)

	s.ApplyStrategy(strat, cond)
	assert.InDelta(t, 500000-500, s.HomeLoanBalance, 1e-9)
	assert.InDelta(t, 40000-300, s.StudentLoanBalance, 1e-9)
	assert.InDelta(t, 200, s.PortfolioValue, 1e-9)
}

func TestApplyStrategy_ClearedDebtsFreeObligations(t *testing.T) {
	cond := testConditions()
	s := NewSimulationState(cond)
	s.HomeLoanBalance = 0
	s.StudentLoanBalance = 0

	strat, err := NewStrategy(0, 0)
	require.NoError(t, err)

	// Cash pool grows by the freed mortgage minimum and the freed levy.
	s.ApplyStrategy(strat, cond)
	assert.InDelta(t, 1000+2000+150, s.PortfolioValue, 1e-9)
	assert.Zero(t, s.HomeLoanBalance)
	assert.Zero(t, s.StudentLoanBalance)
}

func TestGrowWage(t *testing.T) {
	cond := testConditions()
	s := NewSimulationState(cond)

	s.GrowWage(cond)
	assert.InDelta(t, 1030, s.FortnightlySpareCash, 1e-9)
}

func TestReindexStudentLoan(t *testing.T) {
	cond := testConditions()
	s := NewSimulationState(cond)

	s.ReindexStudentLoan(cond)
	assert.InDelta(t, 41600, s.StudentLoanBalance, 1e-9)
}

func TestApplyDistributions(t *testing.T) {
	cond := testConditions()
	s := NewSimulationState(cond)
	s.PortfolioValue = 100000

	s.ApplyDistributions(cond)
	assert.InDelta(t, 500, s.DistributionBalance, 1e-9) // 100000 * 0.02/4

	s.ApplyDistributions(cond)
	assert.InDelta(t, 1000, s.DistributionBalance, 1e-9)
}
