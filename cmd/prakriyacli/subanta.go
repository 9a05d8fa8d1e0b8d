package main

import (
	"github.com/spf13/cobra"

	"github.com/ambuda-org/vidyut-prakriya/args"
)

func newSubantaCmd() *cobra.Command {
	var linga, vibhakti, vacana string

	cmd := &cobra.Command{
		Use:   "subanta <pratipadika>",
		Short: "Decline a nominal stem (subanta)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, cliArgs []string) error {
			l, err := lookupEnum("linga", linga, lingaByName)
			if err != nil {
				return err
			}
			vb, err := lookupEnum("vibhakti", vibhakti, vibhaktiByName)
			if err != nil {
				return err
			}
			v, err := lookupEnum("vacana", vacana, vacanaByName)
			if err != nil {
				return err
			}

			results, err := buildVyakarana().DeriveSubantas(args.Subanta{
				Pratipadika: args.Pratipadika{Text: cliArgs[0]},
				Linga:       l,
				Vibhakti:    vb,
				Vacana:      v,
			})
			if err != nil {
				return err
			}
			return printResults(cmd.OutOrStdout(), results)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&linga, "linga", "pum", "gender: pum|stri|napumsaka")
	flags.StringVar(&vibhakti, "vibhakti", "v1", "case: v1..v7|sambodhana")
	flags.StringVar(&vacana, "vacana", "eka", "number: eka|dvi|bahu")
	return cmd
}
