package log

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

func newRunner(label string, intensity int) (*Log, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	j := journal.Open(context.Background(), store.NewMemory())
	return &Log{
		Mood:      label,
		Intensity: intensity,
		Now:       time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC),
		Journal:   j,
		Printer:   &printers.PrettyPrint{Out: buf, Width: 60, Painter: mood.PlainPainter()},
	}, buf
}

func TestLogAppendsCanonicalMood(t *testing.T) {
	r, buf := newRunner("happy", 7)
	r.Note = "sunny"
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	last, ok := r.Journal.Last()
	if !ok || last.Mood != mood.Happy || last.Intensity != 7 || last.Note != "sunny" {
		t.Fatalf("unexpected entry %+v", last)
	}
	if !strings.Contains(buf.String(), "more entries to unlock") {
		t.Fatalf("expected forecast teaser, got:\n%s", buf.String())
	}
}

func TestLogRejectsMissingMood(t *testing.T) {
	r, _ := newRunner("  ", 5)
	if err := r.Do(context.Background()); err == nil {
		t.Fatal("expected an error without a mood")
	}
	if r.Journal.Len() != 0 {
		t.Fatal("expected nothing logged")
	}
}

func TestLogRejectsOutOfRangeIntensity(t *testing.T) {
	for _, v := range []int{0, 11} {
		r, _ := newRunner(mood.Sad, v)
		if err := r.Do(context.Background()); err == nil {
			t.Fatalf("expected error for intensity %d", v)
		}
		if r.Journal.Len() != 0 {
			t.Fatalf("intensity %d: expected nothing logged", v)
		}
	}
}
