// Package watch re-renders the chart and forecast whenever the stored journal
// changes, for example when another terminal logs a mood.
package watch

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodmap/pkg/journal"
	"tableflip.dev/moodmap/pkg/printers"
	"tableflip.dev/moodmap/pkg/stats"
	"tableflip.dev/moodmap/pkg/store"
)

// Watcher streams change notifications for a key.
type Watcher interface {
	Watch(ctx context.Context, key string) (<-chan store.Event, error)
}

type Watch struct {
	Key     string
	Blob    store.Blob
	Watcher Watcher
	Printer *printers.PrettyPrint
	// Now defaults to time.Now.
	Now func() time.Time
}

// Do renders once, then again after every change until ctx is done or the
// watcher stops.
func (w *Watch) Do(ctx context.Context) error {
	if w.Blob == nil || w.Watcher == nil {
		return errors.New("can not watch, no store")
	}
	if w.Printer == nil {
		w.Printer = printers.New()
	}
	if w.Now == nil {
		w.Now = time.Now
	}

	events, err := w.Watcher.Watch(ctx, w.Key)
	if err != nil {
		return err
	}

	w.render(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			w.render(ctx)
		}
	}
}

func (w *Watch) render(ctx context.Context) {
	j := journal.Open(ctx, w.Blob, journal.WithKey(w.Key))
	all := j.All()
	now := w.Now()
	pp := w.Printer

	stamp := color.New(color.Faint)
	_, _ = stamp.Fprintf(pp.Out, "[%s]\n", now.Format("15:04:05"))
	pp.Subtitle(stats.Summarize(all))
	pp.NewLine()
	pp.Title("Mood Distribution")
	pp.Chart(stats.Distribution(all))
	pp.Title("Mood Forecast")
	pp.Forecast(stats.NewForecast(all, now))
}
