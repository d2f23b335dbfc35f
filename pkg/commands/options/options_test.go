package options

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
)

func TestCalendarGetOn(t *testing.T) {
	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		on      string
		want    time.Time
		wantErr bool
	}{
		"empty is now": {
			on:   "",
			want: now,
		},
		"full date": {
			on:   "2024-12-1",
			want: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
		},
		"short date this year": {
			on:   "3/1",
			want: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		"short date in the future is last year": {
			on:   "11/5",
			want: time.Date(2024, time.November, 5, 0, 0, 0, 0, time.UTC),
		},
		"garbage": {
			on:      "soon",
			wantErr: true,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			o := &CalendarOptions{OnString: tc.on}
			got, err := o.GetOn(now)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestLogGetIntensity(t *testing.T) {
	tests := map[string]struct {
		args []string
		want int
	}{
		"not given uses configured": {
			args: nil,
			want: 5,
		},
		"given": {
			args: []string{"--intensity", "9"},
			want: 9,
		},
		"explicit zero is kept": {
			args: []string{"-i", "0"},
			want: 0,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "log"}
			o := &LogOptions{}
			AddLogArgs(cmd, o)
			if err := cmd.Flags().Parse(tc.args); err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got := o.GetIntensity(cmd, 5); got != tc.want {
				t.Fatalf("want %d, got %d", tc.want, got)
			}
		})
	}
}

func TestHistoryGetLast(t *testing.T) {
	o := &HistoryOptions{Last: "2d"}
	got, err := o.GetLast()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 48*time.Hour {
		t.Fatalf("want 48h, got %v", got)
	}
}
