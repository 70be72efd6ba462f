package recorder

import (
	"errors"
	"time"

	"PayoffPilot/internal/model"
)

// MultiRecorder fans each record out to several sinks, typically the CSV day
// log plus the SQLite mirror.
type MultiRecorder struct {
	sinks []Recorder
}

func NewMultiRecorder(sinks ...Recorder) *MultiRecorder {
	return &MultiRecorder{sinks: sinks}
}

func (m *MultiRecorder) RecordDay(date time.Time, state *model.SimulationState) error {
	for _, s := range m.sinks {
		if err := s.RecordDay(date, state); err != nil {
			return err
		}
	}
	return nil
}

func (m *MultiRecorder) RecordResult(res *model.Result) error {
	for _, s := range m.sinks {
		if err := s.RecordResult(res); err != nil {
			return err
		}
	}
	return nil
}

func (m *MultiRecorder) Close() error {
	var errs []error
	for _, s := range m.sinks {
		errs = append(errs, s.Close())
	}
	return errors.Join(errs...)
}
