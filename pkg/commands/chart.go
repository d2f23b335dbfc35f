package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/moodmap/pkg/runner/chart"
)

func addChart(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Show how often each mood was logged.",
		Example: `
moodmap chart
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			c := chart.Chart{Journal: s.Journal}
			err = c.Do(ctx)
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
