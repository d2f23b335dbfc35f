// Package mood defines the mood journal entry and its vocabulary.
package mood

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The fixed vocabulary offered by the pickers. Custom labels are allowed too.
const (
	Happy   = "Happy"
	Neutral = "Neutral"
	Sad     = "Sad"
	Angry   = "Angry"
	Tired   = "Tired"
)

const (
	// MinIntensity and MaxIntensity bound the intensity input widgets.
	MinIntensity = 1
	MaxIntensity = 10
	// DefaultIntensity is the slider value a fresh form starts with.
	DefaultIntensity = 5
)

// Vocabulary returns the built-in moods in picker order.
func Vocabulary() []string {
	return []string{Happy, Neutral, Sad, Angry, Tired}
}

// Canonical maps a case-insensitive vocabulary name to its label. Labels
// outside the vocabulary are returned trimmed but otherwise untouched.
func Canonical(label string) string {
	label = strings.TrimSpace(label)
	for _, v := range Vocabulary() {
		if strings.EqualFold(v, label) {
			return v
		}
	}
	return label
}

// ValidIntensity reports whether v is inside the widget range.
func ValidIntensity(v int) bool {
	return v >= MinIntensity && v <= MaxIntensity
}

// Entry is one logged moment. Entries are never edited once created.
type Entry struct {
	Mood      string    `json:"mood"`
	Intensity Intensity `json:"intensity"`
	Note      string    `json:"note"`
	Time      Timestamp `json:"time"`
}

// New builds an entry stamped with at.
func New(label string, intensity int, note string, at time.Time) Entry {
	return Entry{
		Mood:      label,
		Intensity: Intensity(intensity),
		Note:      note,
		Time:      Timestamp{Time: at},
	}
}

func (e Entry) String() string {
	if e.Note == "" {
		return fmt.Sprintf("%s (Int: %d) %s", e.Mood, e.Intensity, e.Time)
	}
	return fmt.Sprintf("%s (Int: %d) %s  %s", e.Mood, e.Intensity, e.Time, e.Note)
}

// Intensity is written as a number but also read back from the quoted form
// older journals stored the slider value in.
type Intensity int

func (i *Intensity) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*i = Intensity(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("intensity: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("intensity %q: %w", s, err)
	}
	*i = Intensity(n)
	return nil
}
