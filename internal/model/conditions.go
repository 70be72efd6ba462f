package model

// InitialConditions holds the household's opening balances and the fixed
// rates that drive the simulation. Loaded once from config and never mutated.
type InitialConditions struct {
	HomeLoanInitialBalance      float64 `json:"home_loan_initial_balance" yaml:"home_loan_initial_balance"`
	HomeLoanInterestRate        float64 `json:"home_loan_interest_rate" yaml:"home_loan_interest_rate"`
	HomeLoanMinimumRepayment    float64 `json:"home_loan_minimum_repayment" yaml:"home_loan_minimum_repayment"`
	StudentLoan                 float64 `json:"student_loan" yaml:"student_loan"`
	StudentLoanIndexationRate   float64 `json:"student_loan_indexation_rate" yaml:"student_loan_indexation_rate"`
	FortnightlyStudentLoanTax   float64 `json:"fortnightly_student_loan_tax" yaml:"fortnightly_student_loan_tax"`
	InitialFortnightlySpareCash float64 `json:"initial_fortnightly_spare_cash" yaml:"initial_fortnightly_spare_cash"`
	WageGrowthRate              float64 `json:"wage_growth_rate" yaml:"wage_growth_rate"`
	InvestmentGrowthRate        float64 `json:"investment_growth_rate" yaml:"investment_growth_rate"`
	InvestmentDistributionRate  float64 `json:"investment_distribution_rate" yaml:"investment_distribution_rate"`
}
