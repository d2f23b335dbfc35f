package commands

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodmap/pkg/commands/options"
	"tableflip.dev/moodmap/pkg/mood"
	"tableflip.dev/moodmap/pkg/runner/log"
)

func addLog(topLevel *cobra.Command) {
	lo := &options.LogOptions{}

	cmd := &cobra.Command{
		Use:   "log <mood> [note...]",
		Short: "Log how you feel right now.",
		Example: `
moodmap log happy
moodmap log tired --intensity 8 long day at the office
moodmap log Focused -i 6
`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: mood.Vocabulary(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return output.HandleError(err)
			}

			l := log.Log{
				Mood:      args[0],
				Intensity: lo.GetIntensity(cmd, s.Config.Intensity()),
				Note:      strings.TrimSpace(strings.Join(args[1:], " ")),
				Now:       time.Now(),
				Journal:   s.Journal,
			}
			err = l.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddLogArgs(cmd, lo)

	topLevel.AddCommand(cmd)
}
