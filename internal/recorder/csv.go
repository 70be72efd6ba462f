package recorder

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"PayoffPilot/internal/model"
)

// CSVRecorder writes one strategy's day log to <dir>/data.csv and its final
// result to <dir>/result.json. The CSV header is written exactly once, when
// the recorder is created.
type CSVRecorder struct {
	dir    string
	file   *os.File
	writer *csv.Writer
}

var csvHeader = []string{
	"date",
	"home_loan_balance",
	"student_loan_balance",
	"distribution_balance",
	"portfolio_value",
	"fortnightly_spare_cash",
}

// NewCSVRecorder creates dir if needed and opens a fresh data.csv with the
// header row already written.
func NewCSVRecorder(dir string) (*CSVRecorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "data.csv"))
	if err != nil {
		return nil, fmt.Errorf("create data.csv: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	return &CSVRecorder{dir: dir, file: f, writer: w}, nil
}

func (r *CSVRecorder) RecordDay(date time.Time, state *model.SimulationState) error {
	row := []string{
		date.Format(time.DateOnly),
		formatBalance(state.HomeLoanBalance),
		formatBalance(state.StudentLoanBalance),
		formatBalance(state.DistributionBalance),
		formatBalance(state.PortfolioValue),
		formatBalance(state.FortnightlySpareCash),
	}
	if err := r.writer.Write(row); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	return nil
}

func (r *CSVRecorder) RecordResult(res *model.Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(filepath.Join(r.dir, "result.json"), data, 0644); err != nil {
		return fmt.Errorf("write result.json: %w", err)
	}
	return nil
}

func (r *CSVRecorder) Close() error {
	r.writer.Flush()
	if err := r.writer.Error(); err != nil {
		r.file.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	return r.file.Close()
}

func formatBalance(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
