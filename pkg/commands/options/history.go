package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodmap/pkg/timeutil"
)

// HistoryOptions
type HistoryOptions struct {
	Last  string
	Limit int
}

func AddHistoryArgs(cmd *cobra.Command, o *HistoryOptions) {
	cmd.Flags().StringVar(&o.Last, "last", "",
		`Only show entries newer than this, example: --last=3d or --last="1w 2d".`)
	cmd.Flags().IntVarP(&o.Limit, "limit", "n", 0,
		"Show at most this many entries.")
}

func (o *HistoryOptions) GetLast() (time.Duration, error) {
	return timeutil.ParseWindow(o.Last)
}
