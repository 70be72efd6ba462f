// Package scheduler drives daemon mode: the full strategy sweep re-runs on a
// cron schedule, picking up config file edits between runs.
package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"PayoffPilot/internal/config"
	"PayoffPilot/internal/runner"
)

// Scheduler re-runs the scenario sweep on a cron cadence.
type Scheduler struct {
	Cron       *cron.Cron
	ConfigPath string
}

// NewScheduler creates a Scheduler that reloads config from configPath on
// every tick.
func NewScheduler(configPath string) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		ConfigPath: configPath,
	}
}

// Register adds the re-forecast task under the given cron spec (six-field,
// with seconds).
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.reforecast); err != nil {
		return fmt.Errorf("register re-forecast task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the re-forecast immediately (for RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.reforecast()
}

func (s *Scheduler) reforecast() {
	log.Println("[INFO] running scheduled re-forecast")

	cfg, err := config.Load(s.ConfigPath)
	if err != nil {
		log.Printf("[ERROR] re-forecast load config: %v", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("[ERROR] re-forecast config validation: %v", err)
		return
	}

	report, err := runner.Sweep(cfg)
	if err != nil {
		log.Printf("[ERROR] re-forecast sweep: %v", err)
		return
	}
	log.Printf("[INFO] %s", report.Summary())
}
