package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodmap/pkg/mood"
	"tableflip.dev/moodmap/pkg/stats"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a calendar of then's month with each day painted in the top
// mood logged that day. Days without entries are faint.
func (pp *PrettyPrint) Month(then time.Time, entries ...mood.Entry) {
	days := DaysIn(then)
	byDay := make([][]mood.Entry, days)
	for _, e := range entries {
		local := e.Time.In(then.Location())
		if local.Year() == then.Year() && local.Month() == then.Month() {
			byDay[local.Day()-1] = append(byDay[local.Day()-1], e)
		}
	}

	tf := color.New(color.Italic)
	m := fmt.Sprintf("%s %d", then.Month(), then.Year())
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(pp.Out, "%s%s\n", strings.Repeat(" ", mid), m)

	d := StartDay(then)
	// Pad out the start of the month.
	_, _ = fmt.Fprint(pp.Out, strings.Repeat("   ", int(d)))

	faint := color.New(color.Faint)
	for i := 0; i < days; i++ {
		day := fmt.Sprintf("%2d", i+1)
		if len(byDay[i]) == 0 {
			_, _ = faint.Fprint(pp.Out, day)
		} else {
			top := stats.TopMood(byDay[i])
			_, _ = fmt.Fprint(pp.Out, pp.Painter.Mood(top, day))
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(pp.Out, "\n")
		} else {
			_, _ = fmt.Fprint(pp.Out, " ")
		}
	}
	_, _ = fmt.Fprint(pp.Out, "\n\n")
}

// DaysIn returns the number of days in then's month.
func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, then.Location()).Day()
}

// StartDay is the weekday the month of then starts on.
func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, then.Location()).Weekday()
}
