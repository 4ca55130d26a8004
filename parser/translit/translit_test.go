package translit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToLatin(t *testing.T) {
	type Test struct {
		In   rune
		Want rune
	}
	tests := []Test{
		{In: 'ą', Want: 'a'},
		{In: 'ł', Want: 'l'},
		{In: 'ś', Want: 's'},
		{In: 'ż', Want: 'z'},
		{In: 'Ł', Want: 'L'},
		{In: 'ü', Want: 'u'},
		{In: 'é', Want: 'e'},
		{In: 'ø', Want: 'o'},
		{In: 'a', Want: 'a'},
		{In: '7', Want: '7'},
		{In: ' ', Want: ' '},
	}
	for _, test := range tests {
		require.Equal(t, test.Want, ToLatin(test.In), "%q", test.In)
	}
}

func TestFold(t *testing.T) {
	type Test struct {
		In   string
		Want string
	}
	tests := []Test{
		{In: "", Want: ""},
		{In: "next monday", Want: "next monday"},
		{In: "sobota o siódmej", Want: "sobota o siodmej"},
		{In: "poniedziałek", Want: "poniedzialek"},
		{In: "październik", Want: "pazdziernik"},
		{In: "piątek wieczór", Want: "piatek wieczor"},
		// Not in the fixed table, handled by the decomposition fallback.
		{In: "ṡtȯp", Want: "stop"},
	}
	for _, test := range tests {
		require.Equal(t, test.Want, Fold(test.In))
	}
}

func TestFoldKeepsNonLetters(t *testing.T) {
	require.Equal(t, "31.01.2025 14:30 utc+2", Fold("31.01.2025 14:30 utc+2"))
}
