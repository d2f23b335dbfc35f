package teaui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/moodmap/pkg/journal"
	"tableflip.dev/moodmap/pkg/store"
)

var morning = time.Date(2025, time.March, 4, 9, 30, 0, 0, time.Local)

type failingBlob struct {
	*store.Memory
}

func (failingBlob) Set(string, []byte) error { return errors.New("quota exceeded") }

func newModel(t *testing.T, blob store.Blob) (Model, *journal.Store) {
	t.Helper()
	j := journal.Open(context.Background(), blob, journal.WithClock(func() time.Time { return morning }))
	m := New(j, Options{Intensity: 5, Now: func() time.Time { return morning }})
	return m, j
}

func press(t *testing.T, m Model, keys ...tea.KeyPressMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func typed(s string) []tea.KeyPressMsg {
	keys := make([]tea.KeyPressMsg, 0, len(s))
	for _, r := range s {
		keys = append(keys, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return keys
}

var (
	tab   = tea.KeyPressMsg{Code: tea.KeyTab}
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	right = tea.KeyPressMsg{Code: tea.KeyRight}
	left  = tea.KeyPressMsg{Code: tea.KeyLeft}
	ctrlX = tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl}
)

func TestSaveWithoutMoodWarns(t *testing.T) {
	m, j := newModel(t, store.NewMemory())
	m = press(t, m, tab, enter)

	if j.Len() != 0 {
		t.Fatalf("expected nothing stored, got %d entries", j.Len())
	}
	if m.warning != "Please pick a mood!" {
		t.Fatalf("unexpected warning %q", m.warning)
	}
}

func TestSaveEntryResetsForm(t *testing.T) {
	m, j := newModel(t, store.NewMemory())

	m = press(t, m, right, enter)
	if m.selected != "Neutral" {
		t.Fatalf("expected Neutral selected, got %q", m.selected)
	}
	m = press(t, m, tab, right, right, tab)
	m = press(t, m, typed("  long walk ")...)
	m = press(t, m, enter)

	got := j.All()
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	e := got[0]
	if e.Mood != "Neutral" || e.Intensity != 7 || e.Note != "long walk" {
		t.Fatalf("unexpected entry %+v", e)
	}
	if !e.Time.Equal(morning) {
		t.Fatalf("unexpected time %v", e.Time)
	}
	if m.selected != "" || m.intensity != 5 || m.note.Value() != "" || m.focus != fieldMood {
		t.Fatalf("form not reset: selected=%q intensity=%d note=%q focus=%d", m.selected, m.intensity, m.note.Value(), m.focus)
	}
}

func TestDigitPicksMood(t *testing.T) {
	m, j := newModel(t, store.NewMemory())
	m = press(t, m, typed("3")...)
	m = press(t, m, tab)
	m = press(t, m, typed("9")...)
	m = press(t, m, enter)

	got := j.All()
	if len(got) != 1 || got[0].Mood != "Sad" || got[0].Intensity != 9 {
		t.Fatalf("unexpected entries %+v", got)
	}
}

func TestIntensityBounds(t *testing.T) {
	m, _ := newModel(t, store.NewMemory())
	m = press(t, m, tab)
	for i := 0; i < 12; i++ {
		m = press(t, m, left)
	}
	if m.intensity != 1 {
		t.Fatalf("expected floor of 1, got %d", m.intensity)
	}
	for i := 0; i < 12; i++ {
		m = press(t, m, right)
	}
	if m.intensity != 10 {
		t.Fatalf("expected ceiling of 10, got %d", m.intensity)
	}
}

func TestClearNeedsConfirmation(t *testing.T) {
	blob := store.NewMemory()
	m, j := newModel(t, blob)
	if _, err := j.Append("Happy", 6, ""); err != nil {
		t.Fatalf("append: %v", err)
	}

	m = press(t, m, ctrlX)
	if !m.confirmClear {
		t.Fatalf("expected confirmation prompt")
	}
	m = press(t, m, typed("n")...)
	if j.Len() != 1 {
		t.Fatalf("history cleared without confirmation")
	}

	m = press(t, m, ctrlX)
	m = press(t, m, typed("y")...)
	if j.Len() != 0 {
		t.Fatalf("expected empty history, got %d", j.Len())
	}
	if _, err := blob.Get(j.Key()); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected key removed, got %v", err)
	}
	if m.confirmClear {
		t.Fatalf("confirmation still pending")
	}
}

func TestStorageFailureKeepsEntry(t *testing.T) {
	m, j := newModel(t, failingBlob{store.NewMemory()})
	m = press(t, m, enter, enter)

	if j.Len() != 1 {
		t.Fatalf("expected entry kept in memory, got %d", j.Len())
	}
	if !strings.Contains(m.warning, "quota exceeded") {
		t.Fatalf("expected storage warning, got %q", m.warning)
	}
}

func TestViewRendersPanes(t *testing.T) {
	m, j := newModel(t, store.NewMemory())

	view := stripANSI(m.View())
	for _, want := range []string{
		"Good Morning",
		"No entries yet. How are you feeling?",
		"Log 5 more entries to unlock.",
		"none",
		"ctrl+x clear",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("empty view missing %q:\n%s", want, view)
		}
	}

	for _, label := range []string{"Happy", "Happy", "Tired", "Sad", "Happy"} {
		if _, err := j.Append(label, 5, ""); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	view = stripANSI(m.View())
	for _, want := range []string{
		"Last vibe: Happy • Total moments: 5",
		"Schedule Type",
		"No notes recorded.",
		"Tired",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
