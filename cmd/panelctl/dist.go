package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/okian/panelboard/internal/domain/distribution"
	"github.com/okian/panelboard/internal/domain/types"
	"github.com/okian/panelboard/internal/panelfile"
)

const allDimensions = "all"

var colorBold = color.New(color.Bold)

func newDistCmd(opts *globalOptions) *cobra.Command {
	var dimension string
	cmd := &cobra.Command{
		Use:   "dist <panel-file>",
		Short: "Print distribution tables for a panel file",
		Long: `Print the ranked distribution tables for a .json, .yaml or .yml panel file.
The file holds a single panel record or a list of them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dims, err := selectDimensions(dimension)
			if err != nil {
				return err
			}
			tag, err := opts.tag()
			if err != nil {
				return err
			}
			recs, err := panelfile.Read(args[0])
			if err != nil {
				return err
			}

			p := message.NewPrinter(tag)
			out := cmd.OutOrStdout()
			p.Fprintf(out, "%s: %d\n", colorBold.Sprint("panels"), len(recs))
			for _, dim := range dims {
				d, err := distribution.Build(dim, recs)
				if err != nil {
					return err
				}
				fmt.Fprintln(out)
				renderDistribution(out, p, d)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dimension, "dimension", "d", allDimensions,
		"dimension to print: region, car, phone, occupation, income or all")
	return cmd
}

func selectDimensions(name string) ([]distribution.Dimension, error) {
	if strings.EqualFold(strings.TrimSpace(name), allDimensions) {
		return distribution.Dimensions(), nil
	}
	dim, err := distribution.ParseDimension(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, name)
	}
	return []distribution.Dimension{dim}, nil
}

func renderDistribution(w io.Writer, p *message.Printer, d types.Distribution) {
	p.Fprintf(w, "%s (valid %d / total %d)\n", colorBold.Sprint(d.Dimension), d.Valid, d.Total)
	if len(d.Entries) == 0 {
		fmt.Fprintln(w, "  no answers")
		return
	}

	nameWidth := 0
	for _, e := range d.Entries {
		nameWidth = max(nameWidth, displayWidth(e.Name))
	}
	for _, e := range d.Entries {
		p.Fprintf(w, "  %s %s  %8d  %5.1f%%  %s\n",
			swatch(e.Color), padRight(e.Name, nameWidth), e.Count, e.Rate, e.Color)
	}
}

// swatch renders a two-cell block in the entry's color.
func swatch(hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok || color.NoColor {
		return "■"
	}
	return color.BgRGB(r, g, b).Sprint("  ")
}

func parseHex(hex string) (r, g, b int, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0, false
	}
	return r, g, b, true
}
