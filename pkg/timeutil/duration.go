// Package timeutil parses the look-back windows used by list and report.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultWindow is used when no window is given.
const DefaultWindow = "1w"

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
)

type unit struct {
	label string
	size  time.Duration
	names []string
}

// units are largest first; FormatWindow relies on that order. Hair grows in
// months, so a month (30 days) is the largest unit.
var units = []unit{
	{"mo", month, []string{"mo", "mon", "month"}},
	{"w", week, []string{"w", "wk", "week"}},
	{"d", day, []string{"d", "day"}},
	{"h", time.Hour, []string{"h", "hr", "hour"}},
	{"m", time.Minute, []string{"m", "min", "minute"}},
}

var segment = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)\s*`)

func lookupUnit(name string) (time.Duration, bool) {
	for _, u := range units {
		for _, n := range u.names {
			if name == n || name == n+"s" {
				return u.size, true
			}
		}
	}
	return 0, false
}

// ParseWindow parses windows like "1w", "3d" or "2mo1w" and returns the
// duration with its canonical label.
func ParseWindow(input string) (time.Duration, string, error) {
	rest := strings.ToLower(strings.TrimSpace(input))
	if rest == "" {
		rest = DefaultWindow
	}

	var total time.Duration
	for rest != "" {
		m := segment.FindStringSubmatch(rest)
		if m == nil {
			return 0, "", fmt.Errorf("timeutil: invalid window segment %q", rest)
		}
		n, err := strconv.ParseInt(m[1], 10, 32)
		if err != nil {
			return 0, "", fmt.Errorf("timeutil: invalid window value %q: %w", m[1], err)
		}
		size, ok := lookupUnit(m[2])
		if !ok {
			return 0, "", fmt.Errorf("timeutil: unknown window unit %q", m[2])
		}
		total += time.Duration(n) * size
		rest = rest[len(m[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("timeutil: window must be greater than zero")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders d with month/week/day/hour/minute tokens. Anything
// under a minute is dropped.
func FormatWindow(d time.Duration) string {
	var b strings.Builder
	for _, u := range units {
		if d < u.size {
			continue
		}
		n := d / u.size
		d -= n * u.size
		fmt.Fprintf(&b, "%d%s", n, u.label)
	}
	if b.Len() == 0 {
		return "0m"
	}
	return b.String()
}

// Since parses input and returns the window's start relative to now along
// with the canonical label.
func Since(input string, now time.Time) (time.Time, string, error) {
	d, label, err := ParseWindow(input)
	if err != nil {
		return time.Time{}, "", err
	}
	return now.Add(-d), label, nil
}
