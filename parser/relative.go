package parser

import (
	"strings"
	"time"
)

// weekdayTable maps canonical names to Monday=0..Sunday=6 ordinals.
// "weekend" is a synthetic alias for Saturday. Only the first name present
// in table order is used.
var weekdayTable = []struct {
	name string
	ord  int
}{
	{"monday", 0},
	{"tuesday", 1},
	{"wednesday", 2},
	{"thursday", 3},
	{"friday", 4},
	{"saturday", 5},
	{"sunday", 6},
	{"weekend", 5},
}

// scanWeekday resolves a named weekday relative to now: the day lands on
// that weekday within the current Monday-based week, shifted a week back
// for "last" or forward for "next". The resulting day may leave calendar
// range; normalizeDate settles it.
func (f *fields) scanWeekday(s string, now time.Time) {
	for _, entry := range weekdayTable {
		if !strings.Contains(s, entry.name) {
			continue
		}
		current := (int(now.Weekday()) + 6) % 7
		delta := entry.ord - current
		if strings.Contains(s, "last") {
			delta -= 7
		} else if strings.Contains(s, "next") {
			delta += 7
		}
		f.day = now.Day() + delta
		f.matched = true
		return
	}
}

// scanRelativeDays: independent checks, later ones overwrite.
func (f *fields) scanRelativeDays(s string, now time.Time) {
	if strings.Contains(s, "yesterday") {
		f.day = now.Day() - 1
		f.matched = true
	}
	if strings.Contains(s, "today") {
		f.day = now.Day()
		f.matched = true
	}
	if strings.Contains(s, "tomorrow") {
		f.day = now.Day() + 1
		f.matched = true
	}
}
