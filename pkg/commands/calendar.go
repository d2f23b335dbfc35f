package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodmap/pkg/commands/options"
	"tableflip.dev/moodmap/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show a month with each day coloured by its top mood.",
		Example: `
moodmap calendar
moodmap calendar --on 2025-3-1 --months 3
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			on, err := co.GetOn(time.Now())
			if err != nil {
				return output.HandleError(err)
			}
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			c := calendar.Calendar{
				On:      on,
				Months:  co.Months,
				Journal: s.Journal,
			}
			err = c.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddCalendarArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
