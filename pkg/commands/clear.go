package commands

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/moodmap/pkg/commands/options"
	"tableflip.dev/moodmap/pkg/runner/erase"
)

func addClear(topLevel *cobra.Command) {
	co := &options.ClearOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all logged moods.",
		Example: `
moodmap clear
moodmap clear --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			e := erase.Erase{
				Yes:     co.Yes,
				In:      os.Stdin,
				Out:     color.Output,
				Journal: s.Journal,
			}
			err = e.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddClearArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
