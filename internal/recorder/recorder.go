package recorder

import (
	"time"

	"PayoffPilot/internal/model"
)

// Recorder persists one strategy run's output: a snapshot per simulated day
// and a single result record at the end of the run.
type Recorder interface {
	RecordDay(date time.Time, state *model.SimulationState) error
	RecordResult(res *model.Result) error
	Close() error
}
