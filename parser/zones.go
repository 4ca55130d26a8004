package parser

import (
	"regexp"
	"strings"
	"time"
)

// zoneAbbrevs maps abbreviations to fixed whole-hour offsets east of UTC.
// No DST resolution: est and edt are simply two different entries. Checks
// run in table order and each overwrites, so short forms come before the
// long forms that contain them ("est" before "west", "cest", "eest";
// "edt" before "aedt").
var zoneAbbrevs = []struct {
	name  string
	hours int
}{
	{"gmt", 0},
	{"utc", 0},
	{"est", -5},
	{"edt", -4},
	{"cst", -6},
	{"cdt", -5},
	{"mst", -7},
	{"mdt", -6},
	{"pst", -8},
	{"pdt", -7},
	{"wet", 0},
	{"west", 1},
	{"cet", 1},
	{"cest", 2},
	{"eet", 2},
	{"eest", 3},
	{"msk", 3},
	{"jst", 9},
	{"awst", 8},
	{"aest", 10},
	{"aedt", 11},
	{"nzst", 12},
	{"nzdt", 13},
}

// Explicit numeric offsets. Applied after the abbreviation checks, utc
// after gmt, each overwriting, so "cest utc-5" resolves to -5.
var gmtOffsetRegex = regexp.MustCompile(`\bgmt([+-])(\d{1,2})\b`)
var utcOffsetRegex = regexp.MustCompile(`\butc([+-])(\d{1,2})\b`)

func (f *fields) scanZones(s string) error {
	for _, zone := range zoneAbbrevs {
		if strings.Contains(s, zone.name) {
			f.offset = time.Duration(zone.hours) * time.Hour
			f.matched = true
		}
	}
	for _, re := range []*regexp.Regexp{gmtOffsetRegex, utcOffsetRegex} {
		m := re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		hours, err := atoiCapture(m[2])
		if err != nil {
			return err
		}
		if m[1] == "-" {
			hours = -hours
		}
		f.offset = time.Duration(hours) * time.Hour
		f.matched = true
	}
	return nil
}
