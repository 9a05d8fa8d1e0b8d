package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ambuda-org/vidyut-prakriya/vyakarana"
)

// outputFormat is a custom pflag.Value so --format is validated at parse
// time rather than by a post-hoc switch in every subcommand's RunE.
type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(v string) error {
	switch outputFormat(v) {
	case formatText, formatJSON:
		*f = outputFormat(v)
		return nil
	default:
		return errInvalidFormat(v)
	}
}

func (f *outputFormat) Type() string { return "text|json" }

type errInvalidFormat string

func (e errInvalidFormat) Error() string {
	return "invalid --format " + string(e) + " (want text or json)"
}

var (
	verbose    bool
	logLevel   string
	format     = formatText
	builderOpt struct {
		chandasi bool
	}
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "prakriyacli",
		Short: "Derive Sanskrit word forms and their rule traces",
		Long: "prakriyacli drives the vyakarana derivation engine from the\n" +
			"command line: give it a dhātu/prātipadika and the morphosyntactic\n" +
			"features you want, and it prints every well-formed surface form,\n" +
			"optionally alongside the sūtra-by-sūtra trace that produced it.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogging()
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "print the full rule trace alongside each result")
	pf.StringVar(&logLevel, "log-level", "disabled", "construction-time diagnostics: disabled|debug|info|warn|error")
	pf.VarP(&format, "format", "f", "output format: text|json")
	pf.BoolVar(&builderOpt.chandasi, "chandasi", false, "allow Vedic-only (chāndasa) forms")

	root.AddCommand(
		newTinantaCmd(),
		newKrdantaCmd(),
		newSubantaCmd(),
		newSamasaCmd(),
		newVakyaCmd(),
	)
	return root
}

func configureLogging() error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()
	vyakarana.SetLogger(logger)
	return nil
}

func buildVyakarana() vyakarana.Vyakarana {
	return vyakarana.NewBuilder().
		WithLogSteps(verbose).
		WithChandasi(builderOpt.chandasi).
		Build()
}

var _ pflag.Value = (*outputFormat)(nil)
