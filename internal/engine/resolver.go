package engine

import "PayoffPilot/internal/model"

// ResolveStrategy derives the allocation actually applied on a payday from
// the nominal strategy and the debts still outstanding. When a debt has been
// cleared, half its nominal share is redirected to the surviving debt and the
// remainder flows through to investing via the derived-share rule. With both
// debts cleared everything goes to investing.
func ResolveStrategy(nominal model.Strategy, state *model.SimulationState) (model.Strategy, error) {
	homeOutstanding := state.HomeLoanBalance > 0
	studentOutstanding := state.StudentLoanBalance > 0

	switch {
	case homeOutstanding && studentOutstanding:
		return nominal, nil
	case homeOutstanding:
		return model.NewStrategy(nominal.HomeLoan+nominal.StudentLoan/2, 0)
	case studentOutstanding:
		return model.NewStrategy(0, nominal.StudentLoan+nominal.HomeLoan/2)
	default:
		return model.NewStrategy(0, 0)
	}
}
