package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// CalendarOptions
type CalendarOptions struct {
	OnString string
	Months   int
}

func AddCalendarArgs(cmd *cobra.Command, o *CalendarOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Month to show, given as any day in it, example: --on="2025-3-1" or --on="3/1".`)
	cmd.Flags().IntVarP(&o.Months, "months", "m", 1,
		"Number of months to show, ending with the --on month.")
}

// GetOn parses --on. A short date without a year is taken as this year, or
// the previous one when it would otherwise be in the future.
func (o *CalendarOptions) GetOn(now time.Time) (time.Time, error) {
	if o.OnString == "" {
		return now, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, now.Location())
	if err == nil {
		return t, nil
	}
	t, err = time.ParseInLocation(layoutISOShort, o.OnString, now.Location())
	if err != nil {
		return time.Time{}, err
	}
	t = t.AddDate(now.Year(), 0, 0)
	if t.After(now) {
		t = t.AddDate(-1, 0, 0)
	}
	return t, nil
}
