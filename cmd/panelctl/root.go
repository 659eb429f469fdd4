package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	noColor bool
	lang    string
}

func (o *globalOptions) tag() (language.Tag, error) {
	switch o.lang {
	case "ko", "":
		return language.Korean, nil
	case "en":
		return language.English, nil
	default:
		return language.Und, fmt.Errorf("unsupported --lang %q (want ko or en)", o.lang)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:   "panelctl",
		Short: "Inspect panel distributions from a panel file",
		Long: `panelctl reads a JSON or YAML panel file and prints the same ranked,
colored distribution tables the dashboard shows, one per dimension.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().StringVar(&opts.lang, "lang", "ko", "number formatting locale (ko or en)")

	root.AddCommand(newDistCmd(opts))
	root.AddCommand(newBucketCmd())
	root.AddCommand(newVersionCmd())
	return root
}
