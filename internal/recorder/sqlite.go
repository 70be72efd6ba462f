package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"PayoffPilot/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder mirrors every daily snapshot and strategy result into a
// SQLite database, keyed by run ID so successive sweeps over an evolving
// config can be compared. One database is shared by all strategies in a
// sweep; per-strategy views are obtained with Strategy.
type SQLiteRecorder struct {
	db    *sql.DB
	mu    sync.Mutex
	runID string
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath, runID string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external tooling can read while a sweep is writing.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, runID: runID}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS daily_snapshots (
			id                     INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id                 TEXT NOT NULL,
			strategy               TEXT NOT NULL,
			date                   TEXT NOT NULL,
			home_loan_balance      REAL,
			student_loan_balance   REAL,
			distribution_balance   REAL,
			portfolio_value        REAL,
			fortnightly_spare_cash REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_daily_run ON daily_snapshots(run_id, strategy)`,

		`CREATE TABLE IF NOT EXISTS strategy_results (
			id                     INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id                 TEXT NOT NULL,
			recorded_at            INTEGER NOT NULL,
			strategy               TEXT NOT NULL,
			home_loan_pct          REAL,
			student_loan_pct       REAL,
			investing_pct          REAL,
			net_worth              REAL,
			home_loan_balance      REAL,
			student_loan_balance   REAL,
			distribution_balance   REAL,
			portfolio_value        REAL,
			fortnightly_spare_cash REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_run ON strategy_results(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// Strategy returns a Recorder view scoped to one strategy's run. Closing the
// view is a no-op; the shared database is closed by Close on the parent.
func (r *SQLiteRecorder) Strategy(label string) Recorder {
	return &sqliteStrategyView{parent: r, label: label}
}

func (r *SQLiteRecorder) recordDay(label string, date time.Time, state *model.SimulationState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO daily_snapshots
		(run_id, strategy, date, home_loan_balance, student_loan_balance,
		 distribution_balance, portfolio_value, fortnightly_spare_cash)
		VALUES (?,?,?,?,?,?,?,?)`,
		r.runID, label, date.Format(time.DateOnly),
		state.HomeLoanBalance, state.StudentLoanBalance,
		state.DistributionBalance, state.PortfolioValue, state.FortnightlySpareCash,
	)
	return err
}

func (r *SQLiteRecorder) recordResult(label string, res *model.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fs := res.FinalState
	_, err := r.db.Exec(`INSERT INTO strategy_results
		(run_id, recorded_at, strategy, home_loan_pct, student_loan_pct, investing_pct,
		 net_worth, home_loan_balance, student_loan_balance, distribution_balance,
		 portfolio_value, fortnightly_spare_cash)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		r.runID, time.Now().Unix(), label,
		res.Strategy.HomeLoan, res.Strategy.StudentLoan, res.Strategy.Investing,
		res.NetWorth, fs.HomeLoanBalance, fs.StudentLoanBalance,
		fs.DistributionBalance, fs.PortfolioValue, fs.FortnightlySpareCash,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

type sqliteStrategyView struct {
	parent *SQLiteRecorder
	label  string
}

func (v *sqliteStrategyView) RecordDay(date time.Time, state *model.SimulationState) error {
	return v.parent.recordDay(v.label, date, state)
}

func (v *sqliteStrategyView) RecordResult(res *model.Result) error {
	return v.parent.recordResult(v.label, res)
}

func (v *sqliteStrategyView) Close() error { return nil }
