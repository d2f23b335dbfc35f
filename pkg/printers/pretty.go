package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/moodmap/pkg/mood"
	"tableflip.dev/moodmap/pkg/stats"
)

const (
	defaultWidth = 72
	barWidth     = 30
	labelWidth   = 16
)

// PrettyPrint renders the journal for a terminal.
type PrettyPrint struct {
	Out     io.Writer
	Width   int
	Painter mood.Painter
}

// New prints to color.Output, colouring moods only when stdout is a terminal.
func New() *PrettyPrint {
	return &PrettyPrint{
		Out:     color.Output,
		Width:   defaultWidth,
		Painter: mood.NewPainter(color.Output),
	}
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return defaultWidth
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.Out, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.Out, title)
}

// Subtitle prints the "last vibe" line, or nothing for an empty log.
func (pp *PrettyPrint) Subtitle(s stats.Summary) {
	if s.Total == 0 {
		return
	}
	c := color.New(color.Faint)
	_, _ = c.Fprint(pp.Out, "Last vibe: ")
	_, _ = fmt.Fprint(pp.Out, pp.Painter.Mood(s.Last, s.Last))
	_, _ = c.Fprintf(pp.Out, " • Total moments: %d\n", s.Total)
}

// History prints entries in the order given, newest first for a log.
func (pp *PrettyPrint) History(entries ...mood.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.Out, " No entries yet. How are you feeling?\n\n")
		return
	}

	t := color.New(color.Faint)
	em := color.New(color.Faint, color.Italic)
	for _, e := range entries {
		head := fmt.Sprintf("%s %s", pp.Painter.Paint("▍", mood.Shade(e.Mood, int(e.Intensity))), pp.Painter.Mood(e.Mood, e.Mood))
		_, _ = fmt.Fprintf(pp.Out, "%s %s  %s\n", head, t.Sprintf("(Int: %d)", e.Intensity), t.Sprint(e.Time.String()))
		if strings.TrimSpace(e.Note) == "" {
			_, _ = em.Fprintln(pp.Out, "  No notes recorded.")
			continue
		}
		body := wordwrap.String(e.Note, pp.width()-2)
		_, _ = fmt.Fprintln(pp.Out, indent.String(body, 2))
	}
	_, _ = fmt.Fprintln(pp.Out, "")
}

// Chart prints a horizontal bar per mood.
func (pp *PrettyPrint) Chart(counts []stats.Count) {
	total := 0
	most := 0
	for _, c := range counts {
		total += c.Count
		if c.Count > most {
			most = c.Count
		}
	}
	if total == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.Out, " none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, c := range counts {
		n := c.Count * barWidth / most
		if n == 0 {
			n = 1
		}
		label := truncate.StringWithTail(c.Mood, labelWidth, "…")
		bar := pp.Painter.Mood(c.Mood, strings.Repeat("█", n))
		pct := float64(c.Count) * 100 / float64(total)
		tbl.AddRow(pp.Painter.Mood(c.Mood, label), bar, fmt.Sprintf("%d (%.0f%%)", c.Count, pct))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.Out, tbl)
	_, _ = fmt.Fprintln(pp.Out, "")
}

// Forecast prints the forecast card.
func (pp *PrettyPrint) Forecast(f stats.Forecast) {
	if !f.Ready {
		c := color.New(color.Faint)
		b := color.New(color.Bold)
		_, _ = c.Fprint(pp.Out, "Analyzing patterns... Log ")
		_, _ = b.Fprint(pp.Out, f.Remaining)
		_, _ = c.Fprint(pp.Out, " more entries to unlock.\n\n")
		return
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = uint(pp.width() - 16)
	tbl.AddRow(bold.Sprint("Schedule Type"), ScheduleLabel(f.ScheduleType))
	tbl.AddRow(bold.Sprint("Weekend Vibe"), pp.Painter.Mood(f.WeekendVibe, f.WeekendVibe))
	tbl.AddRow(bold.Sprint("Pro Advice"), f.Advice)
	_, _ = fmt.Fprintln(pp.Out, tbl)
	_, _ = fmt.Fprintln(pp.Out, "")
}

// ScheduleLabel decorates a schedule type for display.
func ScheduleLabel(s stats.ScheduleType) string {
	switch s {
	case stats.EarlyBird:
		return string(s) + " 🌅"
	case stats.NightOwl:
		return string(s) + " 🦉"
	}
	return string(s)
}

// Legend prints the built-in moods with their colours.
func (pp *PrettyPrint) Legend() {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Mood"), bold.Sprint("Colour"), bold.Sprint("Advice"))
	for _, m := range mood.Vocabulary() {
		tbl.AddRow(pp.Painter.Mood(m, m), mood.ThemeHex(m), stats.Advice(m))
	}
	tbl.AddRow(pp.Painter.Mood("", "other"), mood.CustomColor, stats.Advice("other"))
	_, _ = fmt.Fprintln(pp.Out, tbl)
}
