// Package parser turns free-form relative date/time expressions into
// absolute timestamps.
//
// Input like "next monday at 14:30", "31.01.2025" or "jutro wieczorem utc+2"
// resolves against a caller-supplied reference instant. The pipeline is a
// fixed sequence of extraction rules over a single translated string: each
// rule unconditionally overwrites the fields it targets when its pattern
// matches, so precedence is exactly the rule order, with no merging. The
// keyword, weekday, and timezone tables are built once and never mutated,
// which makes Parse safe for concurrent use.
package parser

import (
	"strings"
	"time"

	"humantime/oops"
)

var ErrEmpty = oops.New("empty expression")
var ErrUnrecognized = oops.New("unrecognized expression")

// Parser resolves expressions using its keyword translator. The zero value
// is not usable; construct with New.
type Parser struct {
	translator *Translator
}

func New() *Parser {
	return NewWithTranslator(NewTranslator())
}

// NewWithTranslator creates a parser with a custom keyword table, for
// callers that extend the builtin vocabulary.
func NewWithTranslator(translator *Translator) *Parser {
	return &Parser{translator: translator}
}

// fields accumulates the result while extraction rules run. Every member is
// seeded from the reference instant, so a rule that never fires leaves its
// field at "now". Values may be out of calendar range until normalizeDate.
type fields struct {
	year, month, day     int
	hour, minute, second int
	offset               time.Duration
	matched              bool
}

func newFields(now time.Time) *fields {
	year, month, day := now.Date()
	hour, minute, second := now.Clock()
	_, offsetSeconds := now.Zone()
	return &fields{
		year:   year,
		month:  int(month),
		day:    day,
		hour:   hour,
		minute: minute,
		second: second,
		offset: time.Duration(offsetSeconds) * time.Second,
	}
}

// Parse resolves text against now. A zero now means time.Now().UTC().
//
// The result carries a fixed whole-hour UTC offset; there is no IANA zone or
// DST resolution. Empty input and input where no rule fires are errors
// (ErrEmpty, ErrUnrecognized). A partial match keeps the unmatched fields at
// the reference instant's values: "at 5" is today at five, with today's
// minutes and seconds.
func (p *Parser) Parse(text string, now time.Time) (time.Time, error) {
	if now.IsZero() {
		now = time.Now().UTC() //nolint:gocritic // the zero-now fallback, see lint/gorules.go
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Time{}, ErrEmpty
	}

	// Full offset-aware timestamps short-circuit the whole pipeline. Runs on
	// the raw input because lowercasing would mangle the T and Z designators.
	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return t, nil
	}

	s := p.translator.Translate(trimmed)
	if s == "now" {
		return now, nil
	}

	f := newFields(now)
	if err := f.extract(s, now); err != nil {
		return time.Time{}, err
	}
	if !f.matched {
		return time.Time{}, ErrUnrecognized
	}

	year, month, day := normalizeDate(f.year, f.month, f.day)
	return time.Date(
		year, time.Month(month), day,
		f.hour, f.minute, f.second, 0,
		fixedZone(f.offset),
	), nil
}

// extract runs the rule cascade over the translated string. Rule order is
// the only conflict arbitration: later rules overwrite earlier ones.
func (f *fields) extract(s string, now time.Time) error {
	if err := f.scanYear(s); err != nil {
		return err
	}
	dayPart, err := f.scanAtClause(s)
	if err != nil {
		return err
	}
	if err := f.scanDay(dayPart); err != nil {
		return err
	}
	f.scanWeekday(s, now)
	if err := f.scanStructuredDates(s); err != nil {
		return err
	}
	f.scanMonthNames(s)
	if err := f.scanOrdinals(s); err != nil {
		return err
	}
	f.scanRelativeDays(s, now)
	f.scanDayParts(s)
	if err := f.scanClock(s); err != nil {
		return err
	}
	f.scanMeridiem(s)
	if err := f.scanZones(s); err != nil {
		return err
	}
	return nil
}

func fixedZone(offset time.Duration) *time.Location {
	offsetSeconds := int(offset / time.Second)
	if offsetSeconds == 0 {
		return time.UTC
	}
	return time.FixedZone("", offsetSeconds)
}

var defaultParser = New()

// Parse resolves text against now using the builtin keyword table.
func Parse(text string, now time.Time) (time.Time, error) {
	return defaultParser.Parse(text, now)
}
