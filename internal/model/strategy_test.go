package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStrategy_DerivesInvesting(t *testing.T) {
	tests := []struct {
		name          string
		homeLoan      float64
		studentLoan   float64
		wantInvesting float64
	}{
		{"all to home loan", 100, 0, 0},
		{"even split", 40, 30, 30},
		{"nothing to debts", 0, 0, 100},
		{"fractional shares", 33.5, 33.5, 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStrategy(tt.homeLoan, tt.studentLoan)
			require.NoError(t, err)
			assert.Equal(t, tt.wantInvesting, s.Investing)
			assert.Equal(t, 100.0, s.HomeLoan+s.StudentLoan+s.Investing)
		})
	}
}

func TestNewStrategy_RejectsOverAllocation(t *testing.T) {
	_, err := NewStrategy(70, 40)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid strategy")
}

func TestNewStrategyWithInvesting(t *testing.T) {
	s, err := NewStrategyWithInvesting(50, 30, 20)
	require.NoError(t, err)
	assert.Equal(t, 20.0, s.Investing)

	_, err = NewStrategyWithInvesting(50, 30, 120)
	assert.Error(t, err)

	_, err = NewStrategyWithInvesting(50, 30, -5)
	assert.Error(t, err)
}

func TestStrategy_OutputName(t *testing.T) {
	s, err := NewStrategy(62.5, 12.5)
	require.NoError(t, err)
	assert.Equal(t, "home_62.5_student_12.5_investing_25", s.OutputName())

	s, err = NewStrategy(100, 0)
	require.NoError(t, err)
	assert.Equal(t, "home_100_student_0_investing_0", s.OutputName())
}
