//go:build unit
// +build unit

package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestMonthlyCounts(t *testing.T) {
	from := date(2024, time.January, 15)
	to := date(2024, time.April, 2)

	events := []time.Time{
		date(2024, time.January, 16),
		date(2024, time.January, 31),
		date(2024, time.February, 1),
		date(2024, time.April, 1),
		// outside the range, ignored
		date(2023, time.December, 31),
		date(2024, time.May, 1),
	}

	counts := MonthlyCounts(events, from, to)
	require.Equal(t, []int{2, 1, 0, 1}, counts)
}

func TestMonthlyCounts_SingleMonth(t *testing.T) {
	from := date(2024, time.March, 1)
	to := date(2024, time.March, 28)

	counts := MonthlyCounts([]time.Time{date(2024, time.March, 10)}, from, to)
	require.Equal(t, []int{1}, counts)
}

func TestMonthlyCounts_InvertedRange(t *testing.T) {
	from := date(2024, time.June, 1)
	to := date(2024, time.January, 1)

	require.Nil(t, MonthlyCounts(nil, from, to))
}

func TestPredictNext(t *testing.T) {
	tests := []struct {
		name     string
		counts   []int
		expected float64
	}{
		{"empty", nil, 0},
		{"single sample", []int{4}, 4},
		{"flat", []int{3, 3, 3}, 3},
		{"increasing", []int{2, 4, 6}, 8},
		{"decreasing", []int{6, 4, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PredictNext(tt.counts), 1e-9)
		})
	}
}

func TestRetentionProbability(t *testing.T) {
	tests := []struct {
		name     string
		counts   []int
		expected float64
	}{
		{"no months", nil, 0},
		{"quiet first month", []int{0, 5, 7}, 1},
		{"single active month", []int{1}, 1},
		{"steady activity", []int{3, 3, 3}, 1},
		{"growing activity clamped", []int{2, 4, 6}, 1},
		{"declining activity", []int{6, 4, 2}, 0},
		{"partial decline", []int{4, 4, 3, 3}, 0.625},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RetentionProbability(tt.counts), 1e-9)
		})
	}
}
