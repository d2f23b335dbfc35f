package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/moodmap/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Redraw the chart and forecast whenever a mood is logged.",
		Example: `
moodmap watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			s, err := openSession(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			d, err := s.disk()
			if err != nil {
				return output.HandleError(err)
			}
			w := watch.Watch{
				Key:     s.Config.Key(),
				Blob:    d,
				Watcher: d,
			}
			err = w.Do(ctx)
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
