package parser

import "time"

// normalizeDate settles out-of-range accumulator values into a real
// calendar date. Overflowing days roll forward into following months
// (day 45 of a 31-day month becomes day 14 of the next); days below 1
// roll backward symmetrically, so "yesterday" on the 1st lands on the
// last day of the previous month. Each loop strictly shrinks the
// out-of-range amount, so termination is bounded by day/28 iterations.
func normalizeDate(year, month, day int) (int, int, int) {
	for month > 12 {
		month -= 12
		year++
	}
	for month < 1 {
		month += 12
		year--
	}
	for day > daysIn(year, month) {
		day -= daysIn(year, month)
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	for day < 1 {
		month--
		if month < 1 {
			month = 12
			year--
		}
		day += daysIn(year, month)
	}
	return year, month, day
}

// daysIn returns the length of a month; day zero of the next month is the
// last day of this one.
func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
