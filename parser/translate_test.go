package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	type Test struct {
		In   string
		Want string
	}
	tests := []Test{
		{In: "jutro", Want: "tomorrow"},
		{In: "Wczoraj", Want: "yesterday"},
		{In: "dzisiaj", Want: "today"}, // not "todayiaj": "dzisiaj" is declared before "dzis"
		{In: "dzis", Want: "today"},
		{In: "nastepny poniedzialek", Want: "next monday"},
		{In: "w sobotę o 17", Want: "w saturday at 17"},
		{In: "jutro o 5", Want: "tomorrow at 5"},
		{In: "listopada", Want: "november"},
		{In: "pazdziernik", Want: "october"},
		{In: "maj", Want: "may"},
		{In: "po poludniu", Want: "afternoon"},
		{In: "w nocy", Want: "night"},
		// Raw substring replacement, no word boundaries.
		{In: "xdzisx", Want: "xtodayx"},
		// English input passes through.
		{In: "next monday at 14:30", Want: "next monday at 14:30"},
	}
	translator := NewTranslator()
	for _, test := range tests {
		require.Equal(t, test.Want, translator.Translate(test.In), "%q", test.In)
	}
}

func TestTranslatorAdd(t *testing.T) {
	translator := NewTranslator()
	translator.Add("Übermorgen", "tomorrow")
	// Keys fold the same way input does.
	require.Equal(t, "tomorrow", translator.Translate("übermorgen"))
	require.Equal(t, "tomorrow", translator.Translate("UBERMORGEN"))
}

func TestTranslatorLoadExtra(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	content := "- morgen: tomorrow\n- \"om \": \"at \"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	translator := NewTranslator()
	require.NoError(t, translator.LoadExtra(path))
	require.Equal(t, "tomorrow at 5", translator.Translate("morgen om 5"))
}

func TestTranslatorLoadExtraRejectsMultiPairEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	content := "- morgen: tomorrow\n  overmorgen: tomorrow\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	translator := NewTranslator()
	require.Error(t, translator.LoadExtra(path))
}

func TestTranslatorLoadExtraMissingFile(t *testing.T) {
	translator := NewTranslator()
	require.Error(t, translator.LoadExtra(filepath.Join(t.TempDir(), "nope.yaml")))
}
