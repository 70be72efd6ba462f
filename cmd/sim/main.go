package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"PayoffPilot/internal/config"
	"PayoffPilot/internal/runner"
	"PayoffPilot/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] PayoffPilot starting...")

	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	cfgFlag := flag.String("config", "configs/config.json", "path to the configuration file (JSON or YAML)")
	daemon := flag.Bool("daemon", false, "keep running and re-run the sweep on schedule.recheck_cron")
	flag.Parse()

	cfgPath := *cfgFlag
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	if !*daemon {
		report, err := runner.Sweep(cfg)
		if err != nil {
			log.Fatalf("[FATAL] sweep: %v", err)
		}
		log.Printf("[INFO] %s", report.Summary())
		return
	}

	// Daemon mode: re-run the sweep on schedule, reloading config each time.
	sched := scheduler.NewScheduler(cfgPath)
	if err := sched.Register(cfg.Schedule.RecheckCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing sweep now")
		go sched.RunNow()
	}

	log.Println("[INFO] PayoffPilot is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
}
