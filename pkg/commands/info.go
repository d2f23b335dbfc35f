package commands

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/moodmap/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config and where entries are stored.",
		Example: `
moodmap info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			i := info.Info{
				Config:  s.Config,
				Journal: s.Journal,
				Out:     color.Output,
			}
			err = i.Do(ctx)
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
