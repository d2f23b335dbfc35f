// Package log records a new mood entry from the command line.
package log

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/moodmap/pkg/journal"
	"tableflip.dev/moodmap/pkg/mood"
	"tableflip.dev/moodmap/pkg/printers"
	"tableflip.dev/moodmap/pkg/stats"
)

// recent is how many entries are echoed back after logging.
const recent = 3

type Log struct {
	Mood      string
	Intensity int
	Note      string
	Now       time.Time

	Journal *journal.Store
	Printer *printers.PrettyPrint
}

// Do appends the entry and prints the refreshed journal head and forecast. A
// storage failure is returned after printing, since the entry still counts
// for this run.
func (n *Log) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not log, no journal")
	}
	if !mood.ValidIntensity(n.Intensity) {
		return fmt.Errorf("intensity must be between %d and %d, got %d", mood.MinIntensity, mood.MaxIntensity, n.Intensity)
	}

	_, err := n.Journal.Append(mood.Canonical(n.Mood), n.Intensity, n.Note)
	if errors.Is(err, journal.ErrNoMood) {
		return errors.New("please pick a mood")
	}

	pp := n.Printer
	if pp == nil {
		pp = printers.New()
	}

	all := n.Journal.All()
	pp.Subtitle(stats.Summarize(all))
	pp.NewLine()
	if len(all) > recent {
		all = all[:recent]
	}
	pp.Title("Recent")
	pp.History(all...)

	pp.Title("Mood Forecast")
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	pp.Forecast(stats.NewForecast(n.Journal.All(), now))

	return err
}
