package model

// SimulationState tracks the five running balances for one strategy's run.
// It is mutated exclusively by the transition methods below; each flagged day
// applies a transition exactly once (the caller owns that guarantee).
type SimulationState struct {
	HomeLoanBalance      float64 `json:"home_loan_balance" yaml:"home_loan_balance"`
	StudentLoanBalance   float64 `json:"student_loan_balance" yaml:"student_loan_balance"`
	DistributionBalance  float64 `json:"distribution_balance" yaml:"distribution_balance"`
	PortfolioValue       float64 `json:"portfolio_value" yaml:"portfolio_value"`
	FortnightlySpareCash float64 `json:"fortnightly_spare_cash" yaml:"fortnightly_spare_cash"`
}

// NewSimulationState builds the opening state for a run from the initial
// conditions. The portfolio and accumulated distributions start at zero.
func NewSimulationState(cond *InitialConditions) *SimulationState {
	return &SimulationState{
		HomeLoanBalance:      cond.HomeLoanInitialBalance,
		StudentLoanBalance:   cond.StudentLoan,
		DistributionBalance:  0,
		PortfolioValue:       0,
		FortnightlySpareCash: cond.InitialFortnightlySpareCash,
	}
}

// ApplyHomeLoanInterest accrues one month of interest on the mortgage.
func (s *SimulationState) ApplyHomeLoanInterest(cond *InitialConditions) {
	monthlyRate := cond.HomeLoanInterestRate / 12
	s.HomeLoanBalance += s.HomeLoanBalance * monthlyRate
}

// ApplyMinimumMortgageRepayment deducts the fixed weekly repayment while the
// loan is outstanding. An overshoot past zero is kept, not clamped; the gate
// only stops further repayments once the balance is non-positive.
func (s *SimulationState) ApplyMinimumMortgageRepayment(cond *InitialConditions) {
	if s.HomeLoanBalance > 0 {
		s.HomeLoanBalance -= cond.HomeLoanMinimumRepayment
	}
}

// ApplyMinimumStudentLoanRepayment deducts a year's worth of the fortnightly
// levy in one annual hit, while the loan is outstanding.
func (s *SimulationState) ApplyMinimumStudentLoanRepayment(cond *InitialConditions) {
	if s.StudentLoanBalance > 0 {
		s.StudentLoanBalance -= cond.FortnightlyStudentLoanTax * 26
	}
}

// ApplyStrategy splits the payday cash pool across the three goals. Cleared
// debts return their fixed obligations to the pool: a paid-off mortgage frees
// the minimum repayment, a paid-off student loan frees the fortnightly levy.
func (s *SimulationState) ApplyStrategy(strat Strategy, cond *InitialConditions) {
	cashToUse := s.FortnightlySpareCash

	if s.HomeLoanBalance <= 0 {
		cashToUse += cond.HomeLoanMinimumRepayment
	}
	if s.StudentLoanBalance <= 0 {
		cashToUse += cond.FortnightlyStudentLoanTax
	}

	s.HomeLoanBalance -= strat.HomeLoan / 100.0 * cashToUse
	s.StudentLoanBalance -= strat.StudentLoan / 100.0 * cashToUse
	s.PortfolioValue += strat.Investing / 100.0 * cashToUse
}

// GrowWage applies the annual pay rise to the spare-cash amount.
func (s *SimulationState) GrowWage(cond *InitialConditions) {
	s.FortnightlySpareCash *= 1 + cond.WageGrowthRate
}

// ReindexStudentLoan applies the annual indexation to the student loan.
func (s *SimulationState) ReindexStudentLoan(cond *InitialConditions) {
	s.StudentLoanBalance *= 1 + cond.StudentLoanIndexationRate
}

// ApplyDistributions credits one quarter's distributions from the portfolio
// into the separate distribution balance.
func (s *SimulationState) ApplyDistributions(cond *InitialConditions) {
	quarterlyRate := cond.InvestmentDistributionRate / 4
	s.DistributionBalance += s.PortfolioValue * quarterlyRate
}
