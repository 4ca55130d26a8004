package parser

import (
	"os"
	"strings"

	om "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"humantime/oops"
	"humantime/parser/translit"
)

// keywordPairs rewrites Polish vocabulary to the canonical English words the
// extraction rules know. Applied as literal substring replacements in
// declaration order over the evolving string; there is no word-boundary
// anchoring and no longest-match, so a key that is a substring of another
// ("poludnie" in "po poludniu", "maj" in "maja") must be declared after it.
// The bare preposition "o" ("at") is spelled with flanking spaces for the
// same reason: raw replacement of a single letter would rewrite every word
// containing it.
var keywordPairs = [][2]string{
	{"teraz", "now"},
	{"dzisiaj", "today"},
	{"dzis", "today"},
	{"wczoraj", "yesterday"},
	{"jutro", "tomorrow"},
	{"nastepny", "next"},
	{"nastepna", "next"},
	{"nastepne", "next"},
	{"zeszly", "last"},
	{"zeszla", "last"},
	{"poprzedni", "last"},
	{"poniedzialek", "monday"},
	{"wtorek", "tuesday"},
	{"srode", "wednesday"},
	{"sroda", "wednesday"},
	{"czwartek", "thursday"},
	{"piatek", "friday"},
	{"sobote", "saturday"},
	{"sobota", "saturday"},
	{"niedziele", "sunday"},
	{"niedziela", "sunday"},
	{"stycznia", "january"},
	{"styczen", "january"},
	{"lutego", "february"},
	{"luty", "february"},
	{"marca", "march"},
	{"marzec", "march"},
	{"kwietnia", "april"},
	{"kwiecien", "april"},
	{"maja", "may"},
	{"maj", "may"},
	{"czerwca", "june"},
	{"czerwiec", "june"},
	{"lipca", "july"},
	{"lipiec", "july"},
	{"sierpnia", "august"},
	{"sierpien", "august"},
	{"wrzesnia", "september"},
	{"wrzesien", "september"},
	{"pazdziernika", "october"},
	{"pazdziernik", "october"},
	{"listopada", "november"},
	{"listopad", "november"},
	{"grudnia", "december"},
	{"grudzien", "december"},
	{"po poludniu", "afternoon"},
	{"popoludniu", "afternoon"},
	{"poludnie", "noon"},
	{"polnoc", "midnight"},
	{"rano", "morning"},
	{"wieczorem", "evening"},
	{"wieczor", "evening"},
	{"w nocy", "night"},
	{"noca", "night"},
	{" o ", " at "},
}

// Translator rewrites foreign tokens to the canonical vocabulary. Methods
// are not safe to call concurrently with Translate; build the table up
// front, then share freely.
type Translator struct {
	table *om.OrderedMap[string, string]
}

func NewTranslator() *Translator {
	table := om.New[string, string]()
	for _, pair := range keywordPairs {
		table.Set(pair[0], pair[1])
	}
	return &Translator{table: table}
}

// Add appends a replacement to the end of the table. The key is folded the
// same way input is, so "sobotę" and "sobote" register identically.
func (t *Translator) Add(from, to string) {
	from = translit.Fold(strings.ToLower(from))
	to = strings.ToLower(to)
	t.table.Set(from, to)
}

// LoadExtra appends replacements from a YAML file. The file is a sequence
// of single-pair mappings, preserving declaration order:
//
//	- morgen: tomorrow
//	- overmorgen: tomorrow
func (t *Translator) LoadExtra(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return oops.Wrap(err)
	}
	var pairs []map[string]string
	if err := yaml.Unmarshal(data, &pairs); err != nil {
		return oops.Wrapf(err, "keyword file %s", path)
	}
	for i, pair := range pairs {
		if len(pair) != 1 {
			return oops.Newf("keyword file %s: entry %d must be a single from: to pair", path, i)
		}
		for from, to := range pair {
			t.Add(from, to)
		}
	}
	return nil
}

// Translate lowercases, transliterates, and applies the keyword table.
// The output is the sole input to every extraction rule.
func (t *Translator) Translate(raw string) string {
	s := translit.Fold(strings.ToLower(raw))
	for pair := t.table.Oldest(); pair != nil; pair = pair.Next() {
		s = strings.ReplaceAll(s, pair.Key, pair.Value)
	}
	return s
}
