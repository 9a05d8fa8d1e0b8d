package main

import (
	"github.com/spf13/cobra"

	"github.com/ambuda-org/vidyut-prakriya/args"
)

func newVakyaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vakya <pada>...",
		Short: "Apply external sandhi across a sentence's word boundaries",
		Long: "vakya joins an ordered list of already-finished padas across their\n" +
			"word boundaries. Where a boundary rule is optional (the m-before-\n" +
			"consonant anusvāra/homorganic-nasal alternation), every licensed\n" +
			"reading of the sentence is printed.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, cliArgs []string) error {
			results, err := buildVyakarana().DeriveVakyas(args.Vakya{Padas: cliArgs})
			if err != nil {
				return err
			}
			return printResults(cmd.OutOrStdout(), results)
		},
	}
	return cmd
}
