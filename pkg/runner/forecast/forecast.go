// Package forecast prints the heuristic forecast for the journal.
package forecast

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/moodmap/pkg/journal"
	"tableflip.dev/moodmap/pkg/printers"
	"tableflip.dev/moodmap/pkg/stats"
)

type Forecast struct {
	Now      time.Time
	Location *time.Location

	Journal *journal.Store
	Printer *printers.PrettyPrint
}

func (n *Forecast) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not forecast, no journal")
	}
	pp := n.Printer
	if pp == nil {
		pp = printers.New()
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	loc := n.Location
	if loc == nil {
		loc = time.Local
	}

	pp.Title(stats.Greeting(now.In(loc)))
	pp.Subtitle(stats.Summarize(n.Journal.All()))
	pp.NewLine()
	pp.Title("Mood Forecast")
	pp.Forecast(stats.Forecaster{Location: loc}.Forecast(n.Journal.All(), now))
	return nil
}
