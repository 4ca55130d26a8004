package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"humantime/format"
	"humantime/log"
	"humantime/oops"
	"humantime/parser"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var nowFlag string
var jsonFlag bool
var naturalFlag bool
var keywordsFlag string
var verboseFlag bool

type jsonResult struct {
	Iso         string `json:"iso"`
	Unix        int64  `json:"unix"`
	OffsetHours int    `json:"offset_hours"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "humantime [flags] <expression>",
		Short:        "Resolve a natural-language date/time expression to a timestamp",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(strings.Join(args, " "))
		},
	}
	rootCmd.Flags().StringVar(&nowFlag, "now", "", "reference instant as RFC 3339 (default: current UTC time)")
	rootCmd.Flags().BoolVar(&jsonFlag, "json", false, "output as JSON")
	rootCmd.Flags().BoolVar(&naturalFlag, "natural", false, "render the result as a natural phrase")
	rootCmd.Flags().StringVar(&keywordsFlag, "keywords", "", "YAML file with extra keyword replacements")
	rootCmd.Flags().BoolVar(&verboseFlag, "verbose", false, "log translation and parse details")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(expression string) error {
	if verboseFlag {
		log.SetVerbose()
	}

	now := time.Now().UTC()
	if nowFlag != "" {
		parsed, err := time.Parse(time.RFC3339, nowFlag)
		if err != nil {
			err = oops.Wrapf(err, "bad --now value %q", nowFlag)
			log.Error().Err(err).Msg(oops.Message(err))
			return err
		}
		now = parsed
	}

	translator := parser.NewTranslator()
	if keywordsFlag != "" {
		if err := translator.LoadExtra(keywordsFlag); err != nil {
			log.Error().Err(err).Msg(oops.Message(err))
			return err
		}
	}

	p := parser.NewWithTranslator(translator)
	log.Debug().Str("expression", expression).Time("now", now).Msg("parsing")

	t, err := p.Parse(expression, now)
	if err != nil {
		log.Error().Err(err).Str("expression", expression).Msg(oops.Message(err))
		return err
	}

	switch {
	case jsonFlag:
		_, offsetSeconds := t.Zone()
		out, err := json.Marshal(jsonResult{
			Iso:         t.Format(time.RFC3339),
			Unix:        t.Unix(),
			OffsetHours: offsetSeconds / 3600,
		})
		if err != nil {
			return oops.Wrap(err)
		}
		fmt.Println(string(out))
	case naturalFlag:
		fmt.Println(format.NaturalWithZone(t, now))
	default:
		fmt.Println(t.Format(time.RFC3339))
	}
	return nil
}
