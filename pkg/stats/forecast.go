package stats

import (
	"strings"
	"time"

	"tableflip.dev/moodmap/pkg/mood"
)

// Threshold is the number of entries needed before a forecast is made.
const Threshold = 5

// ScheduleType classifies when most entries are logged.
type ScheduleType string

const (
	EarlyBird ScheduleType = "Early Bird"
	NightOwl  ScheduleType = "Night Owl"
)

// Forecast is the heuristic summary of a log. When Ready is false only
// Remaining is set.
type Forecast struct {
	Ready     bool
	Remaining int

	ScheduleType ScheduleType
	WeekendVibe  string
	Advice       string

	overall string
}

// OverallVibe is the top mood the advice was chosen from.
func (f Forecast) OverallVibe() string {
	return f.overall
}

// Forecaster buckets entries by the wall clock of a location.
type Forecaster struct {
	Location *time.Location
}

// NewForecast computes a forecast in the local time zone.
func NewForecast(entries []mood.Entry, now time.Time) Forecast {
	return Forecaster{Location: time.Local}.Forecast(entries, now)
}

// Forecast buckets entries by their own timestamps; now is not used for
// bucketing.
func (f Forecaster) Forecast(entries []mood.Entry, _ time.Time) Forecast {
	if len(entries) < Threshold {
		return Forecast{Remaining: Threshold - len(entries)}
	}

	loc := f.Location
	if loc == nil {
		loc = time.Local
	}

	var morning, night int
	weekend := make([]mood.Entry, 0, len(entries))
	for _, e := range entries {
		// An entry without a time counts towards the vibe but no bucket.
		if e.Time.IsZero() {
			continue
		}
		hr := e.Time.In(loc).Hour()
		switch {
		case hr >= 5 && hr < 12:
			morning++
		case hr >= 18 || hr < 5:
			night++
		}
		if e.Time.Weekend(loc) {
			weekend = append(weekend, e)
		}
	}

	schedule := NightOwl
	if morning >= night {
		schedule = EarlyBird
	}

	overall := TopMood(entries)
	return Forecast{
		Ready:        true,
		ScheduleType: schedule,
		WeekendVibe:  TopMood(weekend),
		Advice:       Advice(overall),
		overall:      overall,
	}
}

// Advice picks a line by substring so custom labels such as "Super Happy"
// share the advice of the mood they contain.
func Advice(label string) string {
	switch {
	case label == "":
		return "Keep tracking to get personalized advice!"
	case strings.Contains(label, mood.Happy):
		return "You're on a roll! Take this energy to tackle your hardest task today."
	case strings.Contains(label, mood.Sad):
		return "Energy seems low lately. Remember that it's okay to rest and reset."
	case strings.Contains(label, mood.Angry):
		return "High intensity detected. Try a 5-minute breathing exercise."
	case strings.Contains(label, mood.Tired):
		return "Burnout warning. Your body is asking for a real break."
	default:
		return "Consistency is key! You're building a great habit of self-awareness."
	}
}

// Greeting is the header line for the time of day of now.
func Greeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 5:
		return "Burning the midnight oil?"
	case hour < 12:
		return "Good Morning"
	case hour < 17:
		return "Good Afternoon"
	case hour < 22:
		return "Good Evening"
	default:
		return "Night Owl Vibes"
	}
}
