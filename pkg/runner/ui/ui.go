// Package ui launches the interactive mood form.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/moodmap/pkg/journal"
	teaui "tableflip.dev/moodmap/pkg/tui/app"
)

type UI struct {
	Journal *journal.Store
	// Intensity is the slider value the form resets to after each save.
	Intensity int
}

func (d *UI) Do(ctx context.Context) error {
	if d.Journal == nil {
		return errors.New("can not open ui, no journal")
	}
	return teaui.Run(d.Journal, teaui.Options{Intensity: d.Intensity})
}
