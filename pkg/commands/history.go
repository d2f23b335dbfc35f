package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodmap/pkg/commands/options"
	"tableflip.dev/moodmap/pkg/runner/history"
)

func addHistory(topLevel *cobra.Command) {
	ho := &options.HistoryOptions{}

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"ls"},
		Short:   "List logged moods, newest first.",
		Example: `
moodmap history
moodmap history --last 3d
moodmap history -n 10
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			last, err := ho.GetLast()
			if err != nil {
				return output.HandleError(err)
			}
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return output.HandleError(err)
			}

			h := history.History{
				Last:    last,
				Limit:   ho.Limit,
				Now:     time.Now(),
				Journal: s.Journal,
			}
			err = h.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddHistoryArgs(cmd, ho)

	topLevel.AddCommand(cmd)
}
