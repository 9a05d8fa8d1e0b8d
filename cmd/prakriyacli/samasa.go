package main

import (
	"github.com/spf13/cobra"

	"github.com/ambuda-org/vidyut-prakriya/args"
)

func newSamasaCmd() *cobra.Command {
	var samasaType string

	cmd := &cobra.Command{
		Use:   "samasa <pratipadika>...",
		Short: "Form a nominal compound (samāsa) from its constituent stems, in order",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, cliArgs []string) error {
			t, err := lookupEnum("type", samasaType, samasaTypeByName)
			if err != nil {
				return err
			}

			padas := make([]args.Subanta, len(cliArgs))
			for i, text := range cliArgs {
				padas[i] = args.Subanta{Pratipadika: args.Pratipadika{Text: text}}
			}

			results, err := buildVyakarana().DeriveSamasas(args.Samasa{Padas: padas, Type: t})
			if err != nil {
				return err
			}
			return printResults(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().StringVar(&samasaType, "type", "tatpurusha", "compound type: tatpurusha|karmadharaya|dvandva|bahuvrihi|avyayibhava")
	return cmd
}
