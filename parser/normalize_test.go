package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	type Test struct {
		Year, Month, Day             int
		WantYear, WantMonth, WantDay int
	}
	tests := []Test{
		{2025, 1, 15, 2025, 1, 15},
		{2025, 1, 31, 2025, 1, 31},
		// Day 45 of a 31-day month rolls into day 14 of the next.
		{2025, 1, 45, 2025, 2, 14},
		{2025, 12, 32, 2026, 1, 1},
		{2025, 1, 90, 2025, 3, 31},
		// Leap year.
		{2024, 2, 30, 2024, 3, 1},
		{2025, 2, 30, 2025, 3, 2},
		// Days below 1 roll backward.
		{2025, 3, 0, 2025, 2, 28},
		{2025, 1, 0, 2024, 12, 31},
		{2025, 1, -30, 2024, 12, 1},
		// Month overflow carries into the year.
		{2025, 13, 5, 2026, 1, 5},
		{2025, 0, 5, 2024, 12, 5},
		{2025, 25, 5, 2027, 1, 5},
	}
	for _, test := range tests {
		year, month, day := normalizeDate(test.Year, test.Month, test.Day)
		require.Equal(t, [3]int{test.WantYear, test.WantMonth, test.WantDay}, [3]int{year, month, day},
			"normalizeDate(%d, %d, %d)", test.Year, test.Month, test.Day)
	}
}

func TestDaysIn(t *testing.T) {
	require.Equal(t, 31, daysIn(2025, 1))
	require.Equal(t, 28, daysIn(2025, 2))
	require.Equal(t, 29, daysIn(2024, 2))
	require.Equal(t, 30, daysIn(2025, 4))
	require.Equal(t, 31, daysIn(2025, 12))
}
