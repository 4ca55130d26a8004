// Package translit folds diacritic letters to their closest ASCII
// equivalents, one rune at a time.
//
// The parser runs every input through Fold before any keyword matching, so
// "sobota o siódmej" and "sobota o siodmej" translate identically. Letters
// whose diacritic is a combining mark are also handled by a Unicode
// decomposition fallback; the fixed table exists for letters that do not
// decompose (ł, ø, đ) and to keep the common case allocation-free.
//
// All functions are safe for concurrent use by multiple goroutines.
package translit

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// toAscii maps diacritic letters to ASCII. Both cases are present so
// ToLatin keeps its contract even when the caller has not lowercased.
var toAscii = map[rune]rune{
	// Polish
	'ą': 'a', 'ć': 'c', 'ę': 'e', 'ł': 'l', 'ń': 'n',
	'ó': 'o', 'ś': 's', 'ż': 'z', 'ź': 'z',
	'Ą': 'A', 'Ć': 'C', 'Ę': 'E', 'Ł': 'L', 'Ń': 'N',
	'Ó': 'O', 'Ś': 'S', 'Ż': 'Z', 'Ź': 'Z',
	// German
	'ä': 'a', 'ö': 'o', 'ü': 'u', 'ß': 's',
	'Ä': 'A', 'Ö': 'O', 'Ü': 'U',
	// French / Romance
	'à': 'a', 'â': 'a', 'ç': 'c', 'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'î': 'i', 'ï': 'i', 'ô': 'o', 'ù': 'u', 'û': 'u', 'ñ': 'n',
	'À': 'A', 'Â': 'A', 'Ç': 'C', 'É': 'E', 'È': 'E', 'Ê': 'E', 'Ë': 'E',
	'Î': 'I', 'Ï': 'I', 'Ô': 'O', 'Ù': 'U', 'Û': 'U', 'Ñ': 'N',
	// Nordic, no combining-mark decomposition for these
	'å': 'a', 'ø': 'o', 'đ': 'd',
	'Å': 'A', 'Ø': 'O', 'Đ': 'D',
}

// ToLatin maps a single diacritic letter to its ASCII equivalent.
// Runes outside the table pass through unchanged.
func ToLatin(r rune) rune {
	if lat, ok := toAscii[r]; ok {
		return lat
	}
	return r
}

// stripMarks decomposes to NFD, removes combining marks, and recomposes.
// Catches diacritics the fixed table does not list. Built per call:
// transformers carry state and must not be shared between goroutines.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Fold applies ToLatin to every rune of s, then strips any remaining
// combining-mark diacritics.
func Fold(s string) string {
	if isAscii(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(ToLatin(r))
	}
	folded := b.String()
	if isAscii(folded) {
		return folded
	}

	stripped, _, err := transform.String(stripMarks(), folded)
	if err != nil {
		return folded
	}
	return stripped
}

func isAscii(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
