package recorder

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PayoffPilot/internal/model"
)

func TestCSVRecorder_HeaderOnceAndRows(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "home_100_student_0_investing_0")

	rec, err := NewCSVRecorder(dir)
	require.NoError(t, err)

	state := &model.SimulationState{
		HomeLoanBalance:      502500,
		StudentLoanBalance:   40000,
		DistributionBalance:  12.5,
		PortfolioValue:       0,
		FortnightlySpareCash: 1000,
	}
	require.NoError(t, rec.RecordDay(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), state))

	state.HomeLoanBalance = 500500
	require.NoError(t, rec.RecordDay(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), state))
	require.NoError(t, rec.Close())

	f, err := os.Open(filepath.Join(dir, "data.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"date", "home_loan_balance", "student_loan_balance",
		"distribution_balance", "portfolio_value", "fortnightly_spare_cash",
	}, rows[0])
	assert.Equal(t, []string{"2025-01-01", "502500", "40000", "12.5", "0", "1000"}, rows[1])
	assert.Equal(t, "2025-01-02", rows[2][0])
	assert.Equal(t, "500500", rows[2][1])
}

func TestCSVRecorder_ResultJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	rec, err := NewCSVRecorder(dir)
	require.NoError(t, err)

	strat, err := model.NewStrategy(40, 30)
	require.NoError(t, err)

	res := &model.Result{
		Config:   model.InitialConditions{HomeLoanInitialBalance: 500000},
		Strategy: strat,
		NetWorth: -481000,
		FinalState: model.SimulationState{
			HomeLoanBalance:      490500,
			FortnightlySpareCash: 1000,
		},
	}
	require.NoError(t, rec.RecordResult(res))
	require.NoError(t, rec.Close())

	data, err := os.ReadFile(filepath.Join(dir, "result.json"))
	require.NoError(t, err)

	var got model.Result
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *res, got)
	assert.Contains(t, string(data), `"net_worth": -481000`)
}

func TestNoopRecorder(t *testing.T) {
	rec := NewNoopRecorder()
	assert.NoError(t, rec.RecordDay(time.Now(), &model.SimulationState{}))
	assert.NoError(t, rec.RecordResult(&model.Result{}))
	assert.NoError(t, rec.Close())
}
