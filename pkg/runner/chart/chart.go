// Package chart prints the mood distribution.
package chart

import (
	"context"
	"errors"

	"tableflip.dev/moodmap/pkg/journal"
	"tableflip.dev/moodmap/pkg/printers"
	"tableflip.dev/moodmap/pkg/stats"
)

type Chart struct {
	Journal *journal.Store
	Printer *printers.PrettyPrint
}

func (n *Chart) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not chart, no journal")
	}
	pp := n.Printer
	if pp == nil {
		pp = printers.New()
	}
	pp.Title("Mood Distribution")
	pp.Chart(stats.Distribution(n.Journal.All()))
	return nil
}
