// Package stats computes the distribution and forecast views of a mood log.
// Every function is pure: results depend only on the entries passed in.
package stats

import (
	"tableflip.dev/moodmap/pkg/mood"
)

// NoData is the top mood of an empty sequence.
const NoData = "N/A"

// Count is one chart category.
type Count struct {
	Mood  string
	Count int
}

// MoodCounts maps each label to its number of occurrences.
func MoodCounts(entries []mood.Entry) map[string]int {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Mood]++
	}
	return counts
}

// Distribution returns the counts ordered by each label's first appearance in
// entries.
func Distribution(entries []mood.Entry) []Count {
	index := make(map[string]int)
	var out []Count
	for _, e := range entries {
		i, ok := index[e.Mood]
		if !ok {
			i = len(out)
			index[e.Mood] = i
			out = append(out, Count{Mood: e.Mood})
		}
		out[i].Count++
	}
	return out
}

// TopMood returns the most frequent label. Ties go to the label that appears
// first in entries, which for a log is the most recently logged one.
func TopMood(entries []mood.Entry) string {
	top := NoData
	best := 0
	for _, c := range Distribution(entries) {
		if c.Count > best {
			top, best = c.Mood, c.Count
		}
	}
	return top
}

// Summary backs the "last vibe" line.
type Summary struct {
	Last  string
	Total int
}

// Summarize reports the newest label and the number of entries.
func Summarize(entries []mood.Entry) Summary {
	s := Summary{Total: len(entries)}
	if len(entries) > 0 {
		s.Last = entries[0].Mood
	}
	return s
}
