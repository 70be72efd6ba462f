package runner

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Summary renders the operator-facing one-liner for a finished sweep.
func (r *SweepReport) Summary() string {
	if r.Best == nil {
		return "no strategies evaluated"
	}
	return fmt.Sprintf("strategy with the highest net worth (%s): %s",
		humanize.CommafWithDigits(r.Best.NetWorth, 2), r.Best.Strategy)
}
