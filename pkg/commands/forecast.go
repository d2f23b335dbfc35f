package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodmap/pkg/runner/forecast"
)

func addForecast(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Guess your schedule type and weekend vibe from recent entries.",
		Example: `
moodmap forecast
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			f := forecast.Forecast{
				Now:      time.Now(),
				Location: time.Local,
				Journal:  s.Journal,
			}
			err = f.Do(ctx)
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
