package main

import (
	"github.com/spf13/cobra"

	"github.com/ambuda-org/vidyut-prakriya/args"
)

func newTinantaCmd() *cobra.Command {
	var (
		gana, lakara, purusha, vacana, prayoga, pada string
		prefixes, sanadis                            []string
	)

	cmd := &cobra.Command{
		Use:   "tinanta <dhatu>",
		Short: "Derive a finite verb form (tiṅanta)",
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
			for _, name := range sanadis {
				s, err := lookupEnum("sanadi", name, sanadiByName)
				if err != nil {
					return err
				}
				if d, err = d.WithSanadi(s); err != nil {
					return err
				}
			}

			l, err := lookupEnum("lakara", lakara, lakaraByName)
			if err != nil {
				return err
			}
			pr, err := lookupEnum("purusha", purusha, purushaByName)
			if err != nil {
				return err
			}
			v, err := lookupEnum("vacana", vacana, vacanaByName)
			if err != nil {
				return err
			}
			py, err := lookupEnum("prayoga", prayoga, prayogaByName)
			if err != nil {
				return err
			}
			pd, err := lookupEnum("pada", pada, padaByName)
			if err != nil {
				return err
			}

			results, err := buildVyakarana().DeriveTinantas(args.Tinanta{
				Dhatu:   d,
				Prayoga: py,
				Lakara:  l,
				Purusha: pr,
				Vacana:  v,
				Pada:    pd,
			})
			if err != nil {
				return err
			}
			return printResults(cmd.OutOrStdout(), results)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&gana, "gana", "bhvadi", "verb class: bhvadi|adadi|juhotyadi|divadi|svadi|tudadi|rudhadi|tanadi|kryadi|curadi|kandvadi")
	flags.StringVar(&lakara, "lakara", "lat", "tense/mood: lat|lit|lut|lrt|lot|lan|lin-vidhi|lin-ashir|lun|lrn")
	flags.StringVar(&purusha, "purusha", "prathama", "person: prathama|madhyama|uttama")
	flags.StringVar(&vacana, "vacana", "eka", "number: eka|dvi|bahu")
	flags.StringVar(&prayoga, "prayoga", "kartari", "voice: kartari|karmani|bhave")
	flags.StringVar(&pada, "pada", "", "override parasmaipada|atmanepada (default: let the engine decide)")
	flags.StringSliceVar(&prefixes, "prefix", nil, "upasarga, repeatable, leftmost first (e.g. --prefix upa --prefix sam)")
	flags.StringSliceVar(&sanadis, "sanadi", nil, "derivational suffix, repeatable: san|nic|yan|yan-luk|kyac|kamyac|kyan|kvip")
	return cmd
}
