package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testFields() *fields {
	return newFields(time.Date(2025, 1, 15, 12, 30, 45, 0, time.UTC))
}

func TestDigitRuns(t *testing.T) {
	type Test struct {
		In   string
		Want []string
	}
	tests := []Test{
		{In: "", Want: nil},
		{In: "14:30", Want: []string{"14", "30"}},
		{In: "7 45 10 3", Want: []string{"7", "45", "10"}},
		// Digits embedded in longer runs are not standalone.
		{In: "2025", Want: nil},
		{In: "123", Want: nil},
		{In: "2025-01-31", Want: []string{"01", "31"}},
		{In: "23rd", Want: []string{"23"}},
	}
	for _, test := range tests {
		require.Equal(t, test.Want, digitRuns(shortRunRegex, test.In, 3), "%q", test.In)
	}
}

func TestScanYear(t *testing.T) {
	f := testFields()
	require.NoError(t, f.scanYear("back in 1987 or so"))
	require.Equal(t, 1987, f.year)
	require.True(t, f.matched)

	f = testFields()
	require.NoError(t, f.scanYear("no year here 123 12345"))
	require.Equal(t, 2025, f.year)
	require.False(t, f.matched)
}

func TestScanAtClause(t *testing.T) {
	f := testFields()
	rest, err := f.scanAtClause("5 june at 14 30")
	require.NoError(t, err)
	require.Equal(t, "5 june ", rest)
	require.Equal(t, 14, f.hour)
	require.Equal(t, 30, f.minute)
	require.Equal(t, 45, f.second) // only two runs, second keeps its default

	// No "at": the whole string is the day segment.
	f = testFields()
	rest, err = f.scanAtClause("5 june")
	require.NoError(t, err)
	require.Equal(t, "5 june", rest)
	require.False(t, f.matched)

	// "at" inside a word still splits; no digits after means no overwrite.
	f = testFields()
	rest, err = f.scanAtClause("great party")
	require.NoError(t, err)
	require.Equal(t, "gre", rest)
	require.False(t, f.matched)
}

func TestScanStructuredDatesOverlap(t *testing.T) {
	// D.M fires on the prefix, D.M.YYYY overwrites with the full date.
	f := testFields()
	require.NoError(t, f.scanStructuredDates("31.01.2019"))
	require.Equal(t, 2019, f.year)
	require.Equal(t, 1, f.month)
	require.Equal(t, 31, f.day)
}

func TestScanMonthNames(t *testing.T) {
	f := testFields()
	f.scanMonthNames("sometime in february")
	require.Equal(t, 2, f.month)

	// Later calendar months win over earlier ones, whatever the text order.
	f = testFields()
	f.scanMonthNames("december or march")
	require.Equal(t, 12, f.month)

	// Abbreviations count.
	f = testFields()
	f.scanMonthNames("5 oct")
	require.Equal(t, 10, f.month)
}

func TestScanWeekdayTableOrder(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC) // Wednesday the 15th

	// Only the first weekday in table order is used.
	f := newFields(now)
	f.scanWeekday("friday or monday", now)
	require.Equal(t, 13, f.day) // monday, ordinal 0, is first in the table

	// "weekend" aliases saturday.
	f = newFields(now)
	f.scanWeekday("next weekend", now)
	require.Equal(t, 25, f.day)
}

func TestScanDayPartsOrder(t *testing.T) {
	f := testFields()
	f.scanDayParts("early morning, then evening")
	require.Equal(t, 18, f.hour) // last match in evaluation order wins

	f = testFields()
	f.scanDayParts("around midnight")
	require.Equal(t, 0, f.hour)
	require.Equal(t, 0, f.minute)
	require.Equal(t, 0, f.second)
}
