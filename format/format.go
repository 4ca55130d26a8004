// Package format renders timestamps the way the parser reads them.
package format

import (
	"fmt"
	"strings"
	"time"
)

var weekdayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// Natural renders t relative to now: "today at 14:30", "tomorrow at 08:00",
// a weekday phrase within the surrounding week ("next monday at 09:00"),
// and the plain numeric form beyond that. Midnight drops the time part.
func Natural(t time.Time, now time.Time) string {
	daysApart := daysBetween(now, t)

	var day string
	switch {
	case daysApart == 0:
		day = "today"
	case daysApart == 1:
		day = "tomorrow"
	case daysApart == -1:
		day = "yesterday"
	case daysApart > 1 && daysApart < 7:
		day = weekdayNames[t.Weekday()]
		// Mondays start the week: anything past this week's Sunday is "next".
		nowOrd := (int(now.Weekday()) + 6) % 7
		if daysApart > 6-nowOrd {
			day = "next " + day
		}
	case daysApart < -1 && daysApart > -7:
		day = "last " + weekdayNames[t.Weekday()]
	default:
		day = t.Format("02.01.2006")
	}

	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return day
	}
	clock := t.Format("15:04")
	if t.Second() != 0 {
		clock = t.Format("15:04:05")
	}
	return fmt.Sprintf("%s at %s", day, clock)
}

// NaturalWithZone appends the UTC offset when t does not share now's zone.
func NaturalWithZone(t time.Time, now time.Time) string {
	phrase := Natural(t, now)
	_, tOffset := t.Zone()
	_, nowOffset := now.Zone()
	if tOffset == nowOffset {
		return phrase
	}
	hours := tOffset / 3600
	var zone string
	if tOffset%3600 == 0 {
		zone = fmt.Sprintf("utc%+d", hours)
	} else {
		zone = strings.ToLower(t.Format("-07:00"))
		zone = "utc" + zone
	}
	return phrase + " " + zone
}

// daysBetween counts calendar-date steps from a to b, ignoring clocks.
func daysBetween(a, b time.Time) int {
	aDate := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bDate := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bDate.Sub(aDate) / (24 * time.Hour))
}
