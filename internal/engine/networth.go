package engine

import "PayoffPilot/internal/model"

// NetWorth reduces a final state to the scalar used to rank strategies:
// home equity plus portfolio value plus accumulated distributions, minus
// outstanding liabilities.
//
// The home-loan balance is subtracted twice — once inside the equity term and
// again as a liability. That matches the behavior downstream ranking depends
// on; do not "correct" it here without revisiting every recorded result.
func NetWorth(state *model.SimulationState, cond *model.InitialConditions) float64 {
	equity := cond.HomeLoanInitialBalance - state.HomeLoanBalance

	return (equity + state.PortfolioValue + state.DistributionBalance) -
		(state.HomeLoanBalance + state.StudentLoanBalance)
}
