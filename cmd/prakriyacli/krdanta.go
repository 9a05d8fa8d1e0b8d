package main

import (
	"github.com/spf13/cobra"

	"github.com/ambuda-org/vidyut-prakriya/args"
)

func newKrdantaCmd() *cobra.Command {
	var (
		gana     string
		krt      string
		prefixes []string
	)

	cmd := &cobra.Command{
		Use:   "krdanta <dhatu>",
		Short: "Derive a primary nominal derivative (kṛdanta)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, cliArgs []string) error {
			g, err := lookupEnum("gana", gana, ganaByName)
			if err != nil {
				return err
			}
			d, err := args.NewDhatu(cliArgs[0], g)
			if err != nil {
				return err
			}
			if len(prefixes) > 0 {
				d = d.WithPrefixes(prefixes...)
			}
			k, err := lookupEnum("krt", krt, krtByName)
			if err != nil {
				return err
			}

			results, err := buildVyakarana().DeriveKrdantas(args.Krdanta{Dhatu: d, Krt: k})
			if err != nil {
				return err
			}
			return printResults(cmd.OutOrStdout(), results)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&gana, "gana", "bhvadi", "verb class: bhvadi|adadi|juhotyadi|divadi|svadi|tudadi|rudhadi|tanadi|kryadi|curadi|kandvadi")
	flags.StringVar(&krt, "krt", "ktva", "kṛt suffix: ktva|lyap|tumun|kta|ktavatu|shatr|shanac|gay|ap")
	flags.StringSliceVar(&prefixes, "prefix", nil, "upasarga, repeatable, leftmost first")
	return cmd
}
