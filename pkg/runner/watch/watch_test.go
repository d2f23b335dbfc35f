package watch

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"tableflip.dev/moodmap/pkg/journal"
	"tableflip.dev/moodmap/pkg/mood"
	"tableflip.dev/moodmap/pkg/printers"
	"tableflip.dev/moodmap/pkg/store"
)

type fakeWatcher struct {
	ch chan store.Event
}

func (f *fakeWatcher) Watch(context.Context, string) (<-chan store.Event, error) {
	return f.ch, nil
}

func TestWatchRendersOnEachChange(t *testing.T) {
	blob := store.NewMemory()
	fw := &fakeWatcher{ch: make(chan store.Event, 1)}
	buf := &bytes.Buffer{}
	w := &Watch{
		Key:     store.DefaultKey,
		Blob:    blob,
		Watcher: fw,
		Printer: &printers.PrettyPrint{Out: buf, Width: 80, Painter: mood.PlainPainter()},
		Now:     func() time.Time { return time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC) },
	}

	j := journal.Open(context.Background(), blob)
	if _, err := j.Append(mood.Angry, 9, ""); err != nil {
		t.Fatalf("append: %v", err)
	}
	fw.ch <- store.Event{Key: store.DefaultKey}
	close(fw.ch)

	if err := w.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	out := buf.String()
	if got := strings.Count(out, "Mood Distribution"); got != 2 {
		t.Fatalf("expected 2 renders, got %d:\n%s", got, out)
	}
	if !strings.Contains(out, "Angry") {
		t.Fatalf("expected the logged mood in output:\n%s", out)
	}
}

func TestWatchStopsOnCancel(t *testing.T) {
	fw := &fakeWatcher{ch: make(chan store.Event)}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watch{
		Key:     store.DefaultKey,
		Blob:    store.NewMemory(),
		Watcher: fw,
		Printer: &printers.PrettyPrint{Out: &bytes.Buffer{}, Painter: mood.PlainPainter()},
	}
	done := make(chan error, 1)
	go func() { done <- w.Do(ctx) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("do: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
