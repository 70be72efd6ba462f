// Package calendar classifies which financial events fall on a given
// simulated day. Classification is a pure function of the simulation start
// date and the current date.
package calendar

import "time"

// DayFlags marks the financial events that occur on a single day.
type DayFlags struct {
	Payday                         bool
	MortgageRepaymentDay           bool
	FirstOfTheMonth                bool
	FirstOfTheQuarter              bool
	PayRise                        bool
	StudentLoanReindexationDay     bool
	StudentLoanMinimumRepaymentDay bool
}

// FlagsFor computes the event flags for current given the run's start date.
// Both arguments are calendar dates (midnight, same location).
//
// Paydays fall on alternating Wednesdays with the fortnightly phase anchored
// to start: a Wednesday is a payday iff whole days elapsed since start,
// modulo 14, exceeds 6. When start is not itself a Wednesday the cadence
// still anchors to it through the modulo; depending on start's weekday this
// can skip what would otherwise be the first payday. That anchoring is
// intentional and pinned by tests.
func FlagsFor(start, current time.Time) DayFlags {
	var f DayFlags

	daysSinceStart := int(current.Sub(start) / (24 * time.Hour))

	if current.Weekday() == time.Wednesday && daysSinceStart%14 > 6 {
		f.Payday = true
	}

	if current.Weekday() == time.Thursday {
		f.MortgageRepaymentDay = true
	}

	if current.Day() == 1 {
		f.FirstOfTheMonth = true

		if int(current.Month())%3 == 1 {
			f.FirstOfTheQuarter = true
		}

		switch current.Month() {
		case time.March:
			f.PayRise = true
		case time.June:
			f.StudentLoanReindexationDay = true
		case time.July:
			f.StudentLoanMinimumRepaymentDay = true
		}
	}

	return f
}
