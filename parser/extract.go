package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"

	"humantime/oops"
)

// Standalone digit runs: no digit on either side, so "20" inside "2025"
// does not count. Lookarounds need regexp2.
var yearRunRegex = regexp2.MustCompile(`(?<!\d)\d{4}(?!\d)`, regexp2.None)
var shortRunRegex = regexp2.MustCompile(`(?<!\d)\d{1,2}(?!\d)`, regexp2.None)

// digitRuns collects up to max standalone runs, left to right.
func digitRuns(re *regexp2.Regexp, s string, max int) []string {
	var runs []string
	m, err := re.FindStringMatch(s)
	for err == nil && m != nil && len(runs) < max {
		runs = append(runs, m.String())
		m, err = re.FindNextMatch(m)
	}
	return runs
}

func atoiCapture(capture string) (int, error) {
	n, err := strconv.Atoi(capture)
	if err != nil {
		return 0, oops.Wrapf(err, "bad numeric capture %q", capture)
	}
	return n, nil
}

// scanYear takes the first standalone 4-digit run as the year.
func (f *fields) scanYear(s string) error {
	runs := digitRuns(yearRunRegex, s, 1)
	if len(runs) == 0 {
		return nil
	}
	year, err := atoiCapture(runs[0])
	if err != nil {
		return err
	}
	f.year = year
	f.matched = true
	return nil
}

// scanAtClause splits the string at the first literal "at". Up to three
// standalone 1-2 digit runs after it become hour, minute, second; missing
// runs keep their defaults. Returns the segment day extraction should use.
// "at" is matched anywhere, including inside words ("saturday", "chat"),
// an accepted false positive of the loose-substring design.
func (f *fields) scanAtClause(s string) (string, error) {
	idx := strings.Index(s, "at")
	if idx < 0 {
		return s, nil
	}
	after := s[idx+len("at"):]
	for i, run := range digitRuns(shortRunRegex, after, 3) {
		value, err := atoiCapture(run)
		if err != nil {
			return "", err
		}
		switch i {
		case 0:
			f.hour = value
		case 1:
			f.minute = value
		case 2:
			f.second = value
		}
		f.matched = true
	}
	return s[:idx], nil
}

// scanDay takes the first standalone 1-2 digit run before any "at" clause.
func (f *fields) scanDay(s string) error {
	runs := digitRuns(shortRunRegex, s, 1)
	if len(runs) == 0 {
		return nil
	}
	day, err := atoiCapture(runs[0])
	if err != nil {
		return err
	}
	f.day = day
	f.matched = true
	return nil
}

// Structured date literals, in the fixed application order. Later entries
// overwrite earlier ones, so the last pattern to match wins: "1.2.2033"
// resolves through D.M.YYYY even though D.M matched its prefix first.
var datePatterns = []struct {
	re               *regexp.Regexp
	year, month, day int // 1-based submatch index, 0 when the pattern has no year
}{
	{regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`), 3, 1, 2},   // M/D/YYYY, US order
	{regexp.MustCompile(`\b(\d{1,2})\.(\d{1,2})\b`), 0, 2, 1},          // D.M
	{regexp.MustCompile(`\b(\d{1,2})\.(\d{1,2})\.(\d{4})\b`), 3, 2, 1}, // D.M.YYYY
	{regexp.MustCompile(`\b(\d{4})\.(\d{1,2})\.(\d{1,2})\b`), 1, 2, 3}, // YYYY.M.D
	{regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`), 1, 2, 3},   // YYYY-M-D
	{regexp.MustCompile(`\b(\d{1,2})-(\d{1,2})-(\d{4})\b`), 3, 2, 1},   // D-M-YYYY
}

func (f *fields) scanStructuredDates(s string) error {
	for _, pattern := range datePatterns {
		m := pattern.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		if pattern.year > 0 {
			year, err := atoiCapture(m[pattern.year])
			if err != nil {
				return err
			}
			f.year = year
		}
		month, err := atoiCapture(m[pattern.month])
		if err != nil {
			return err
		}
		day, err := atoiCapture(m[pattern.day])
		if err != nil {
			return err
		}
		f.month = month
		f.day = day
		f.matched = true
	}
	return nil
}

var monthNames = []struct {
	full, abbr string
}{
	{"january", "jan"},
	{"february", "feb"},
	{"march", "mar"},
	{"april", "apr"},
	{"may", "may"},
	{"june", "jun"},
	{"july", "jul"},
	{"august", "aug"},
	{"september", "sep"},
	{"october", "oct"},
	{"november", "nov"},
	{"december", "dec"},
}

// scanMonthNames runs one independent check per month, in calendar order.
// Each check overwrites, so when two names are present the later month in
// the calendar wins regardless of text position.
func (f *fields) scanMonthNames(s string) {
	for i, name := range monthNames {
		if strings.Contains(s, name.full) || strings.Contains(s, name.abbr) {
			f.month = i + 1
			f.matched = true
		}
	}
}

var ordinalRegex = regexp.MustCompile(`\b(\d{1,2})(st|nd|rd|th)\b`)

// scanOrdinals: literal 1st/2nd/3rd first, then the generic ordinal regex
// overwrites with its full numeric part, so "23rd" ends up as 23 even
// though the "3rd" substring check fired.
func (f *fields) scanOrdinals(s string) error {
	if strings.Contains(s, "1st") {
		f.day = 1
		f.matched = true
	}
	if strings.Contains(s, "2nd") {
		f.day = 2
		f.matched = true
	}
	if strings.Contains(s, "3rd") {
		f.day = 3
		f.matched = true
	}
	m := ordinalRegex.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	day, err := atoiCapture(m[1])
	if err != nil {
		return err
	}
	f.day = day
	f.matched = true
	return nil
}
