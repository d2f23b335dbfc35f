// Package history prints the logged entries newest first.
package history

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/moodmap/pkg/journal"
	"tableflip.dev/moodmap/pkg/mood"
	"tableflip.dev/moodmap/pkg/printers"
	"tableflip.dev/moodmap/pkg/stats"
	"tableflip.dev/moodmap/pkg/timeutil"
)

type History struct {
	// Last limits the output to entries newer than now-Last when non-zero.
	Last time.Duration
	// Limit caps the number of entries shown when positive.
	Limit int
	Now   time.Time

	Journal *journal.Store
	Printer *printers.PrettyPrint
}

func (n *History) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not get history, no journal")
	}
	pp := n.Printer
	if pp == nil {
		pp = printers.New()
	}

	all := n.Journal.All()
	title := "History"
	if n.Last > 0 {
		title += ", last " + timeutil.FormatWindow(n.Last)
	}
	pp.Title(title)
	pp.Subtitle(stats.Summarize(all))
	pp.NewLine()
	pp.History(n.filtered(all)...)
	return nil
}

func (n *History) filtered(all []mood.Entry) []mood.Entry {
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	out := make([]mood.Entry, 0, len(all))
	for _, e := range all {
		if n.Last > 0 && e.Time.Before(now.Add(-n.Last)) {
			continue
		}
		out = append(out, e)
		if n.Limit > 0 && len(out) == n.Limit {
			break
		}
	}
	return out
}
