package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/moodmap/pkg/journal"
	"tableflip.dev/moodmap/pkg/store"
)

// Info reports where the journal is read from.
type Info struct {
	Config  store.Config
	Journal *journal.Store
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("MOODMAP_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "MOODMAP_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "MOODMAP_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if src := store.Source(n.Config); src != "" {
		_, _ = fmt.Fprintln(out, "Config file:", src)
	} else {
		_, _ = fmt.Fprintln(out, "Config file: none, using defaults")
	}
	_, _ = fmt.Fprintln(out, "Config.path:", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.key:", n.Config.Key())
	_, _ = fmt.Fprintln(out, "Config.intensity:", n.Config.Intensity())

	if n.Journal == nil {
		return fmt.Errorf("failed to open the journal")
	}
	_, _ = fmt.Fprintf(out, "Entries: %d\n", n.Journal.Len())
	return nil
}
