package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/moodmap/pkg/mood"
	"tableflip.dev/moodmap/pkg/stats"
	"tableflip.dev/moodmap/pkg/tui/theme"
)

const (
	barWidth    = 24
	historySize = 5
)

// View renders the form followed by the derived panes.
func (m Model) View() string {
	entries := m.entries()
	summary := stats.Summarize(entries)

	var b strings.Builder
	b.WriteString(m.theme.Header.Render("moodmap · " + stats.Greeting(m.now())))
	b.WriteString("\n")
	if summary.Total > 0 {
		b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("Last vibe: %s • Total moments: %d", summary.Last, summary.Total)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderForm())
	b.WriteString("\n")

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Card.Render(m.renderChart(entries)),
		" ",
		m.theme.Card.Render(m.renderForecast(entries)),
	)
	b.WriteString(panes)
	b.WriteString("\n")
	b.WriteString(m.theme.Card.Render(m.renderHistory(entries)))
	b.WriteString("\n")

	if m.warning != "" {
		b.WriteString(m.theme.Warning.Render(m.warning))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.theme.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Help.Render(helpText))
	return b.String()
}

func (m Model) card(f field) lipgloss.Style {
	if m.focus == f {
		return m.theme.Focused
	}
	return m.theme.Card
}

func (m Model) renderForm() string {
	var picker strings.Builder
	picker.WriteString(m.theme.Title.Render("Mood"))
	picker.WriteString("\n")
	for i, label := range m.moods {
		text := fmt.Sprintf("%d %s", i+1, label)
		style := theme.Mood(label)
		switch {
		case label == m.selected:
			text = "[" + text + "]"
			style = style.Bold(true).Underline(true)
		case i == m.cursor && m.focus == fieldMood:
			text = ">" + text + " "
		default:
			text = " " + text + " "
		}
		picker.WriteString(style.Render(text))
		picker.WriteString(" ")
	}

	slider := m.theme.Title.Render(fmt.Sprintf("Intensity %d", m.intensity)) + "\n" + m.renderSlider()
	note := m.theme.Title.Render("Note") + "\n" + m.note.View()

	return lipgloss.JoinVertical(lipgloss.Left,
		m.card(fieldMood).Render(picker.String()),
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.card(fieldIntensity).Render(slider),
			" ",
			m.card(fieldNote).Render(note),
		),
	)
}

func (m Model) renderSlider() string {
	label := m.selected
	if label == "" {
		label = m.moods[m.cursor]
	}
	style := theme.Shade(label, m.intensity)
	filled := strings.Repeat("█", m.intensity)
	empty := strings.Repeat("░", mood.MaxIntensity-m.intensity)
	return style.Render(filled) + m.theme.Muted.Render(empty)
}

func (m Model) renderChart(entries []mood.Entry) string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Mood Distribution"))
	b.WriteString("\n")
	dist := stats.Distribution(entries)
	if len(dist) == 0 {
		b.WriteString(m.theme.Muted.Render("none"))
		return b.String()
	}
	most := 0
	for _, c := range dist {
		most = max(most, c.Count)
	}
	for _, c := range dist {
		n := c.Count * barWidth / most
		if n == 0 {
			n = 1
		}
		label := truncate.StringWithTail(c.Mood, 8, "…")
		b.WriteString(fmt.Sprintf("%-8s ", label))
		b.WriteString(theme.Mood(c.Mood).Render(strings.Repeat("█", n)))
		b.WriteString(fmt.Sprintf(" %d\n", c.Count))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m Model) renderForecast(entries []mood.Entry) string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Forecast"))
	b.WriteString("\n")
	f := stats.NewForecast(entries, m.now())
	if !f.Ready {
		b.WriteString(m.theme.Muted.Render(fmt.Sprintf("Analyzing patterns... Log %d more entries to unlock.", f.Remaining)))
		return b.String()
	}
	b.WriteString(fmt.Sprintf("Schedule Type  %s\n", f.ScheduleType))
	b.WriteString("Weekend Vibe   " + theme.Mood(f.WeekendVibe).Render(f.WeekendVibe) + "\n")
	b.WriteString("Pro Advice     " + wordwrap.String(f.Advice, 36))
	return b.String()
}

func (m Model) renderHistory(entries []mood.Entry) string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("History"))
	if m.confirmClear {
		b.WriteString("  " + m.theme.Warning.Render("delete all?"))
	}
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(m.theme.Muted.Render("No entries yet. How are you feeling?"))
		return b.String()
	}
	for i, e := range entries {
		if i == historySize {
			b.WriteString(m.theme.Muted.Render(fmt.Sprintf("… %d older", len(entries)-historySize)))
			break
		}
		head := theme.Shade(e.Mood, int(e.Intensity)).Render("▍ " + e.Mood)
		b.WriteString(fmt.Sprintf("%s (Int: %d)  %s\n", head, e.Intensity, m.theme.Subtitle.Render(e.Time.String())))
		note := e.Note
		if note == "" {
			b.WriteString("  " + m.theme.Muted.Render("No notes recorded.") + "\n")
			continue
		}
		b.WriteString("  " + truncate.StringWithTail(note, 60, "…") + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
