package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

type unit struct {
	label   string
	aliases []string
	value   time.Duration
}

// units are ordered largest first; FormatWindow relies on it.
var units = []unit{
	{"w", []string{"wk", "wks", "week", "weeks"}, 7 * day},
	{"d", []string{"day", "days"}, day},
	{"h", []string{"hr", "hrs", "hour", "hours"}, time.Hour},
	{"m", []string{"min", "mins", "minute", "minutes"}, time.Minute},
}

var windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)

func lookup(name string) (time.Duration, bool) {
	for _, u := range units {
		if u.label == name {
			return u.value, true
		}
		for _, a := range u.aliases {
			if a == name {
				return u.value, true
			}
		}
	}
	return 0, false
}

// ParseWindow parses a look-back window such as "3d", "1w" or "1w2d6h". An
// empty input means no window and returns zero.
func ParseWindow(input string) (time.Duration, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, nil
	}

	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		base, ok := lookup(matches[2])
		if !ok {
			return 0, fmt.Errorf("unsupported window unit %q", matches[2])
		}
		total += time.Duration(value) * base
		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, fmt.Errorf("window must be greater than zero")
	}
	return total, nil
}

// FormatWindow renders d with the largest units first, e.g. "1w2d".
func FormatWindow(d time.Duration) string {
	var b strings.Builder
	for _, u := range units {
		if d < u.value {
			continue
		}
		count := d / u.value
		d -= count * u.value
		fmt.Fprintf(&b, "%d%s", count, u.label)
	}
	if b.Len() == 0 {
		return "0m"
	}
	return b.String()
}
