package parser

import (
	"regexp"
	"strings"
)

// Time-of-day keywords in evaluation order. Later matches overwrite, which
// is what makes "afternoon" win over its "noon" substring and "midnight"
// win over "night".
var dayParts = []struct {
	name string
	hour int
}{
	{"morning", 8},
	{"noon", 12},
	{"afternoon", 14},
	{"evening", 18},
	{"night", 22},
	{"midnight", 0},
}

func (f *fields) scanDayParts(s string) {
	for _, part := range dayParts {
		if strings.Contains(s, part.name) {
			f.hour = part.hour
			f.minute = 0
			f.second = 0
			f.matched = true
		}
	}
}

var clockRegex = regexp.MustCompile(`\b(\d{1,2}):(\d{1,2})(?::(\d{1,2}))?\b`)

// scanClock overwrites hour, minute, and second from an explicit H:M[:S]
// literal. Runs after the keyword defaults, so explicit times win.
func (f *fields) scanClock(s string) error {
	m := clockRegex.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	hour, err := atoiCapture(m[1])
	if err != nil {
		return err
	}
	minute, err := atoiCapture(m[2])
	if err != nil {
		return err
	}
	second := 0
	if m[3] != "" {
		second, err = atoiCapture(m[3])
		if err != nil {
			return err
		}
	}
	f.hour = hour
	f.minute = minute
	f.second = second
	f.matched = true
	return nil
}

// scanMeridiem adjusts the hour when " am" or " pm" appears anywhere in the
// string. The search is free substring, not anchored to the time literal; a
// stray "9 pm me later" still shifts the hour. Known false-positive surface.
func (f *fields) scanMeridiem(s string) {
	if strings.Contains(s, " am") && f.hour == 12 {
		f.hour = 0
	}
	if strings.Contains(s, " pm") && f.hour < 12 {
		f.hour += 12
	}
}
