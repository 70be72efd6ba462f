package model

// Result is the final record for one strategy's run: the conditions it ran
// under, the nominal strategy, its terminal net worth and final balances.
type Result struct {
	Config     InitialConditions `json:"config" yaml:"config"`
	Strategy   Strategy          `json:"strategy" yaml:"strategy"`
	NetWorth   float64           `json:"net_worth" yaml:"net_worth"`
	FinalState SimulationState   `json:"final_state" yaml:"final_state"`
}
