package recorder

import (
	"time"

	"PayoffPilot/internal/model"
)

// NoopRecorder discards all output. Used when no sink is configured and in
// tests that only care about the final state.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordDay(_ time.Time, _ *model.SimulationState) error { return nil }
func (n *NoopRecorder) RecordResult(_ *model.Result) error                    { return nil }
func (n *NoopRecorder) Close() error                                          { return nil }
