package erase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"tableflip.dev/moodmap/pkg/journal"
	"tableflip.dev/moodmap/pkg/mood"
	"tableflip.dev/moodmap/pkg/store"
)

func seeded(t *testing.T, blob store.Blob) *journal.Store {
	t.Helper()
	j := journal.Open(context.Background(), blob)
	for _, l := range []string{mood.Happy, mood.Sad} {
		if _, err := j.Append(l, 5, ""); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	return j
}

func TestEraseAsksFirst(t *testing.T) {
	tests := []struct {
		answer  string
		cleared bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"yes please\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		blob := store.NewMemory()
		j := seeded(t, blob)
		out := &bytes.Buffer{}
		e := Erase{In: strings.NewReader(tt.answer), Out: out, Journal: j}
		if err := e.Do(context.Background()); err != nil {
			t.Fatalf("%q: do: %v", tt.answer, err)
		}
		if got := j.Len() == 0; got != tt.cleared {
			t.Fatalf("%q: expected cleared=%v, got %v", tt.answer, tt.cleared, got)
		}
		if !tt.cleared && !strings.Contains(out.String(), "Kept your history.") {
			t.Fatalf("%q: unexpected output %q", tt.answer, out.String())
		}
		_, err := blob.Get(store.DefaultKey)
		if tt.cleared != errors.Is(err, store.ErrNotFound) {
			t.Fatalf("%q: unexpected stored state, err=%v", tt.answer, err)
		}
	}
}

func TestEraseYesSkipsPrompt(t *testing.T) {
	j := seeded(t, store.NewMemory())
	out := &bytes.Buffer{}
	e := Erase{Yes: true, Out: out, Journal: j}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(out.String(), "Deleted 2 entries.") {
		t.Fatalf("unexpected output %q", out.String())
	}
	if strings.Contains(out.String(), "Delete all history") {
		t.Fatal("did not expect a prompt")
	}
}
