// Package legend prints the mood vocabulary with its colours and advice.
package legend

import (
	"context"

	"tableflip.dev/moodmap/pkg/printers"
)

type Legend struct {
	Printer *printers.PrettyPrint
}

func (k *Legend) Do(ctx context.Context) error {
	pp := k.Printer
	if pp == nil {
		pp = printers.New()
	}
	pp.NewLine()
	pp.Legend()
	pp.NewLine()
	return nil
}
