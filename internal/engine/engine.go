// Package engine runs the per-day financial state machine: classify the
// day's events, apply the balance transitions in a fixed order, and reduce
// the final state to a comparable net worth.
package engine

import (
	"fmt"
	"time"

	"PayoffPilot/internal/calendar"
	"PayoffPilot/internal/model"
	"PayoffPilot/internal/recorder"
)

// Run simulates one strategy from start to end date inclusive, emitting a
// snapshot to rec after every simulated day. The intra-day order is fixed:
// mortgage minimum repayment, then the payday allocation, then the monthly
// block (interest, at most one of the three annual events, then quarterly
// distributions). Changing that order changes compounding bases.
func Run(cond *model.InitialConditions, nominal model.Strategy, start, end time.Time, rec recorder.Recorder) (*model.Result, error) {
	state := model.NewSimulationState(cond)

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		flags := calendar.FlagsFor(start, date)

		if flags.MortgageRepaymentDay {
			state.ApplyMinimumMortgageRepayment(cond)
		}

		if flags.Payday {
			resolved, err := ResolveStrategy(nominal, state)
			if err != nil {
				return nil, fmt.Errorf("resolve strategy on %s: %w", date.Format(time.DateOnly), err)
			}
			state.ApplyStrategy(resolved, cond)
		}

		if flags.FirstOfTheMonth {
			state.ApplyHomeLoanInterest(cond)

			if flags.PayRise {
				state.GrowWage(cond)
			} else if flags.StudentLoanReindexationDay {
				state.ReindexStudentLoan(cond)
			} else if flags.StudentLoanMinimumRepaymentDay {
				state.ApplyMinimumStudentLoanRepayment(cond)
			}

			if flags.FirstOfTheQuarter {
				state.ApplyDistributions(cond)
			}
		}

		if err := rec.RecordDay(date, state); err != nil {
			return nil, fmt.Errorf("record day %s: %w", date.Format(time.DateOnly), err)
		}
	}

	result := &model.Result{
		Config:     *cond,
		Strategy:   nominal,
		NetWorth:   NetWorth(state, cond),
		FinalState: *state,
	}

	if err := rec.RecordResult(result); err != nil {
		return nil, fmt.Errorf("record result: %w", err)
	}

	return result, nil
}
