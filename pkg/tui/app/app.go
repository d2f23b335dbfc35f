// Package teaui hosts the Bubble Tea program for the moodmap TUI.
package teaui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/moodmap/pkg/journal"
	"tableflip.dev/moodmap/pkg/mood"
	"tableflip.dev/moodmap/pkg/tui/theme"
)

const helpText = "tab switch field · ←/→ choose · space pick mood · enter save · ctrl+x clear · esc quit"

type field int

const (
	fieldMood field = iota
	fieldIntensity
	fieldNote
	fieldCount
)

// Options configure a new Model.
type Options struct {
	// Intensity is the slider value a fresh form starts with.
	Intensity int
	// Moods are offered by the picker; defaults to the built-in vocabulary.
	Moods []string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Model is the mood form plus the history, chart and forecast views. All
// derived views are recomputed from the journal on every render.
type Model struct {
	journal *journal.Store
	theme   theme.Theme
	now     func() time.Time

	moods     []string
	cursor    int
	selected  string
	intensity int
	reset     int
	note      textinput.Model
	focus     field

	confirmClear bool
	status       string
	warning      string

	width  int
	height int
}

// New creates the UI over j.
func New(j *journal.Store, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "How was it? (optional)"
	ti.CharLimit = 280
	ti.Prompt = ""

	moods := opts.Moods
	if len(moods) == 0 {
		moods = mood.Vocabulary()
	}
	reset := opts.Intensity
	if !mood.ValidIntensity(reset) {
		reset = mood.DefaultIntensity
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return Model{
		journal:   j,
		theme:     theme.Default(),
		now:       now,
		moods:     moods,
		intensity: reset,
		reset:     reset,
		note:      ti,
		focus:     fieldMood,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.note.SetWidth(max(20, min(60, msg.Width-20)))
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	if m.focus == fieldNote {
		m.note, cmd = m.note.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.confirmClear {
		switch key {
		case "y", "Y", "enter":
			m.clear()
		case "n", "N", "esc":
			m.status = "Kept your history."
		default:
			return m, nil
		}
		m.confirmClear = false
		return m, nil
	}

	switch key {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "ctrl+x":
		if m.journal != nil && m.journal.Len() > 0 {
			m.confirmClear = true
			m.status = "Delete all history? (y/n)"
		}
		return m, nil
	case "tab":
		return m, m.setFocus((m.focus + 1) % fieldCount)
	case "shift+tab":
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	case "enter":
		if m.focus == fieldMood && m.selected == "" {
			m.pick()
			return m, nil
		}
		return m, m.save()
	}

	switch m.focus {
	case fieldMood:
		switch key {
		case "left", "h", "up", "k":
			m.cursor = (m.cursor + len(m.moods) - 1) % len(m.moods)
		case "right", "l", "down", "j":
			m.cursor = (m.cursor + 1) % len(m.moods)
		case "space", " ":
			m.pick()
		default:
			if n := digit(key); n > 0 && n <= len(m.moods) {
				m.cursor = n - 1
				m.pick()
			}
		}
	case fieldIntensity:
		switch key {
		case "left", "h", "down", "j", "-":
			m.intensity = max(mood.MinIntensity, m.intensity-1)
		case "right", "l", "up", "k", "+", "=":
			m.intensity = min(mood.MaxIntensity, m.intensity+1)
		default:
			if n := digit(key); n > 0 {
				m.intensity = n
			} else if key == "0" {
				m.intensity = mood.MaxIntensity
			}
		}
	case fieldNote:
		var cmd tea.Cmd
		m.note, cmd = m.note.Update(msg)
		return m, cmd
	}
	return m, nil
}

func digit(key string) int {
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return int(key[0] - '0')
	}
	return 0
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = f
	if f == fieldNote {
		return m.note.Focus()
	}
	m.note.Blur()
	return nil
}

func (m *Model) pick() {
	m.selected = m.moods[m.cursor]
	m.status = fmt.Sprintf("Feeling %s. Set the intensity, add a note, then press enter.", m.selected)
}

// save appends the form as a new entry and resets the form.
func (m *Model) save() tea.Cmd {
	if m.journal == nil {
		m.warning = "No journal is open."
		return nil
	}
	_, err := m.journal.Append(m.selected, m.intensity, strings.TrimSpace(m.note.Value()))
	if errors.Is(err, journal.ErrNoMood) {
		m.warning = "Please pick a mood!"
		return nil
	}

	m.warning = ""
	var serr *journal.StorageError
	if errors.As(err, &serr) {
		m.warning = "Saved for this session only: " + serr.Err.Error()
	}
	m.status = fmt.Sprintf("Logged %s (%d).", m.selected, m.intensity)

	m.selected = ""
	m.intensity = m.reset
	m.note.Reset()
	return m.setFocus(fieldMood)
}

func (m *Model) clear() {
	if err := m.journal.Clear(); err != nil {
		m.warning = "History cleared here, but the store could not be updated: " + err.Error()
	} else {
		m.warning = ""
	}
	m.status = "History deleted."
}

// Run starts the program and blocks until the user quits.
func Run(j *journal.Store, opts Options) error {
	p := tea.NewProgram(New(j, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) entries() []mood.Entry {
	if m.journal == nil {
		return nil
	}
	return m.journal.All()
}
