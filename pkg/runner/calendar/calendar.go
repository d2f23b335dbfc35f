// Package calendar prints a month view painted with each day's top mood.
package calendar

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/moodmap/pkg/journal"
	"tableflip.dev/moodmap/pkg/printers"
)

type Calendar struct {
	On time.Time
	// Months is the number of months to print, ending with On.
	Months int

	Journal *journal.Store
	Printer *printers.PrettyPrint
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not print calendar, no journal")
	}
	pp := n.Printer
	if pp == nil {
		pp = printers.New()
	}
	on := n.On
	if on.IsZero() {
		on = time.Now()
	}
	months := n.Months
	if months < 1 {
		months = 1
	}

	first := time.Date(on.Year(), on.Month(), 1, 0, 0, 0, 0, on.Location())
	all := n.Journal.All()
	for i := months - 1; i >= 0; i-- {
		pp.Month(first.AddDate(0, -i, 0), all...)
	}
	return nil
}
