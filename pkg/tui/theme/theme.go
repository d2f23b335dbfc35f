package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moodmap/pkg/mood"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header   lipgloss.Style
	Subtitle lipgloss.Style
	Card     lipgloss.Style
	Focused  lipgloss.Style
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Status   lipgloss.Style
	Warning  lipgloss.Style
	Help     lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#30363d")).
		Padding(0, 1)

	return Theme{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7c7cff")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e")),
		Card:     card,
		Focused:  card.BorderForeground(lipgloss.Color("212")),
		Title:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e")).Italic(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("#f85149")).Bold(true),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Mood styles text in the theme colour of label.
func Mood(label string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(mood.ThemeHex(label)))
}

// Shade styles text in the intensity-faded colour of label.
func Shade(label string, intensity int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(mood.Shade(label, intensity).Hex()))
}
