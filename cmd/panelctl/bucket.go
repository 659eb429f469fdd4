package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okian/panelboard/internal/domain/distribution"
)

func newBucketCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bucket <income text>...",
		Short: "Show which income band a free-text answer falls into",
		Example: `  panelctl bucket "월 250만원" "1,000만원 이상"
  panelctl bucket 모름`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, text := range args {
				fmt.Fprintf(out, "%s\t%s\n", strings.TrimSpace(text), distribution.IncomeBucket(text))
			}
		},
	}
}
