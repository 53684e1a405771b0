package recurring_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlithgow/vatu/internal/recurring"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNext(t *testing.T) {
	tests := []struct {
		name    string
		current time.Time
		freq    recurring.Frequency
		want    time.Time
	}{
		{"Daily", date(2025, 6, 15), recurring.FrequencyDaily, date(2025, 6, 16)},
		{"DailyAcrossMonth", date(2025, 6, 30), recurring.FrequencyDaily, date(2025, 7, 1)},
		{"Weekly", date(2025, 6, 15), recurring.FrequencyWeekly, date(2025, 6, 22)},
		{"Biweekly", date(2025, 6, 15), recurring.FrequencyBiweekly, date(2025, 6, 29)},
		{"Monthly", date(2025, 6, 15), recurring.FrequencyMonthly, date(2025, 7, 15)},
		{"MonthlyJan31ClampsToFeb28", date(2025, 1, 31), recurring.FrequencyMonthly, date(2025, 2, 28)},
		{"MonthlyJan31ClampsToFeb29LeapYear", date(2024, 1, 31), recurring.FrequencyMonthly, date(2024, 2, 29)},
		{"MonthlyJan30ClampsToFeb28", date(2025, 1, 30), recurring.FrequencyMonthly, date(2025, 2, 28)},
		{"MonthlyMar31ClampsToApr30", date(2025, 3, 31), recurring.FrequencyMonthly, date(2025, 4, 30)},
		{"MonthlyAcrossYear", date(2025, 12, 15), recurring.FrequencyMonthly, date(2026, 1, 15)},
		{"Bimonthly", date(2025, 6, 15), recurring.FrequencyBimonthly, date(2025, 8, 15)},
		{"BimonthlyDec31ClampsToFeb28", date(2024, 12, 31), recurring.FrequencyBimonthly, date(2025, 2, 28)},
		{"Quarterly", date(2025, 6, 15), recurring.FrequencyQuarterly, date(2025, 9, 15)},
		// The clamp applies to the final target month only: Nov 30
		// plus a quarter lands on the last day of February, not on a
		// date derived from three independent monthly hops.
		{"QuarterlyNov30ClampsToFeb28", date(2024, 11, 30), recurring.FrequencyQuarterly, date(2025, 2, 28)},
		{"QuarterlyNov30ClampsToFeb29LeapYear", date(2023, 11, 30), recurring.FrequencyQuarterly, date(2024, 2, 29)},
		{"Yearly", date(2025, 6, 15), recurring.FrequencyYearly, date(2026, 6, 15)},
		{"YearlyFeb29ClampsToFeb28", date(2024, 2, 29), recurring.FrequencyYearly, date(2025, 2, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := recurring.Next(tt.current, tt.freq)

			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestNext_InvalidFrequency(t *testing.T) {
	_, err := recurring.Next(date(2025, 6, 15), recurring.Frequency("fortnightly"))

	assert.ErrorIs(t, err, recurring.ErrInvalidFrequency)
}

func TestNextOccurrence(t *testing.T) {
	intPtr := func(n int) *int { return &n }

	timePtr := func(tm time.Time) *time.Time { return &tm }

	t.Run("NoEndConditions", func(t *testing.T) {
		next, ok, err := recurring.NextOccurrence(date(2025, 6, 15), recurring.FrequencyMonthly, nil, nil, 12)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, next.Equal(date(2025, 7, 15)))
	})

	t.Run("CandidateWithinEndDate", func(t *testing.T) {
		next, ok, err := recurring.NextOccurrence(date(2025, 6, 15), recurring.FrequencyMonthly,
			timePtr(date(2025, 7, 15)), nil, 0)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, next.Equal(date(2025, 7, 15)))
	})

	t.Run("CandidatePastEndDate", func(t *testing.T) {
		_, ok, err := recurring.NextOccurrence(date(2025, 6, 15), recurring.FrequencyMonthly,
			timePtr(date(2025, 7, 14)), nil, 0)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("MaxOccurrencesReached", func(t *testing.T) {
		// The occurrence cap terminates independently of any date.
		_, ok, err := recurring.NextOccurrence(date(2025, 6, 15), recurring.FrequencyDaily, nil, intPtr(3), 3)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("MaxOccurrencesNotYetReached", func(t *testing.T) {
		next, ok, err := recurring.NextOccurrence(date(2025, 6, 15), recurring.FrequencyDaily, nil, intPtr(3), 2)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, next.Equal(date(2025, 6, 16)))
	})

	t.Run("InvalidFrequency", func(t *testing.T) {
		_, _, err := recurring.NextOccurrence(date(2025, 6, 15), recurring.Frequency(""), nil, nil, 0)

		assert.ErrorIs(t, err, recurring.ErrInvalidFrequency)
	})
}
