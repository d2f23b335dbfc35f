// Package erase deletes the whole journal after confirmation.
package erase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	log "github.com/sirupsen/logrus"

	"tableflip.dev/moodmap/pkg/journal"
)

type Erase struct {
	// Yes skips the confirmation prompt.
	Yes bool
	In  io.Reader
	Out io.Writer

	Journal *journal.Store
}

func (n *Erase) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not clear, no journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if n.Journal.Len() == 0 {
		_, _ = fmt.Fprintln(out, "Nothing to clear.")
		return nil
	}

	if !n.Yes && !n.confirm(out) {
		_, _ = fmt.Fprintln(out, "Kept your history.")
		return nil
	}

	count := n.Journal.Len()
	if err := n.Journal.Clear(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Deleted %d entries.\n", count)
	return nil
}

func (n *Erase) confirm(out io.Writer) bool {
	in := n.In
	if in == nil {
		in = os.Stdin
	}
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("Delete all history (%d entries)", n.Journal.Len()),
		IsConfirm: true,
		Stdin:     io.NopCloser(in),
		Stdout:    nopWriteCloser{out},
	}
	_, err := prompt.Run()
	if err != nil && !errors.Is(err, promptui.ErrAbort) {
		log.WithError(err).Debug("clear: prompt failed")
	}
	return err == nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
