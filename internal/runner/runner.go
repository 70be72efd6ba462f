// Package runner sweeps the configured strategies: one full simulation per
// strategy, each with its own segregated output directory, then picks the
// strategy with the highest terminal net worth.
package runner

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"PayoffPilot/internal/config"
	"PayoffPilot/internal/engine"
	"PayoffPilot/internal/model"
	"PayoffPilot/internal/recorder"
)

// RunContext carries the per-sweep bookkeeping: the clock value the sweep
// started at, a run ID for correlating persisted rows and log lines, and the
// timestamped directory all strategy outputs live under. Built once per
// sweep; nothing here is package-level state.
type RunContext struct {
	RunID      string
	StartedAt  time.Time
	OutputRoot string
}

// NewRunContext creates the timestamped output directory under outputDir.
func NewRunContext(outputDir string, now time.Time) (*RunContext, error) {
	root := filepath.Join(outputDir, now.Format("2006-01-02_15-04-05"))
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create run dir: %w", err)
	}
	return &RunContext{
		RunID:      uuid.NewString(),
		StartedAt:  now,
		OutputRoot: root,
	}, nil
}

// SweepReport is the outcome of running every configured strategy once.
type SweepReport struct {
	Context *RunContext
	Results []*model.Result
	Best    *model.Result
}

// Sweep runs every strategy in cfg sequentially and returns the collected
// results with the best one by net worth. Strategies share nothing but the
// optional SQLite mirror, which serializes writes internally.
func Sweep(cfg *config.Config) (*SweepReport, error) {
	strategies, err := cfg.BuildStrategies()
	if err != nil {
		return nil, err
	}

	ctx, err := NewRunContext(cfg.Output.Dir, time.Now())
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] sweep %s: %d strategies, %s to %s",
		ctx.RunID, len(strategies),
		cfg.StartDate.Format(time.DateOnly), cfg.EndDate.Format(time.DateOnly))

	var mirror *recorder.SQLiteRecorder
	if cfg.Database.SQLitePath != "" {
		mirror, err = recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, ctx.RunID)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, csv only: %v", err)
			mirror = nil
		} else {
			defer mirror.Close()
		}
	}

	report := &SweepReport{Context: ctx}

	for _, strat := range strategies {
		res, err := runStrategy(cfg, strat, ctx, mirror)
		if err != nil {
			return nil, fmt.Errorf("strategy %s: %w", strat.OutputName(), err)
		}
		log.Printf("[INFO] strategy %s: net worth %.2f", strat.OutputName(), res.NetWorth)
		report.Results = append(report.Results, res)
	}

	report.Best = Best(report.Results)
	return report, nil
}

func runStrategy(cfg *config.Config, strat model.Strategy, ctx *RunContext, mirror *recorder.SQLiteRecorder) (*model.Result, error) {
	dir := filepath.Join(ctx.OutputRoot, strat.OutputName())

	csvRec, err := recorder.NewCSVRecorder(dir)
	if err != nil {
		return nil, err
	}

	var rec recorder.Recorder = csvRec
	if mirror != nil {
		rec = recorder.NewMultiRecorder(csvRec, mirror.Strategy(strat.OutputName()))
	}

	res, err := engine.Run(&cfg.InitialConditions, strat, cfg.StartDate.Time, cfg.EndDate.Time, rec)
	if err != nil {
		rec.Close()
		return nil, err
	}
	if err := rec.Close(); err != nil {
		return nil, err
	}
	return res, nil
}

// Best returns the result with the maximum net worth. Ties keep the earliest
// strategy in config order. Returns nil for an empty slice.
func Best(results []*model.Result) *model.Result {
	var best *model.Result
	for _, res := range results {
		if best == nil || res.NetWorth > best.NetWorth {
			best = res
		}
	}
	return best
}
