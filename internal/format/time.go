// Package format renders times and durations for terminal output.
package format

import (
	"fmt"
	"time"
)

const (
	dateTimeLayout = "2006-01-02 15:04:05"
	clockLayout    = "15:04:05"
)

// DateTime formats t in local time with date and seconds.
// Example output: "2024-01-23 15:04:05"
func DateTime(t time.Time) string {
	return t.Local().Format(dateTimeLayout)
}

// Clock formats only the local time of day.
// Example output: "15:04:05"
func Clock(t time.Time) string {
	return t.Local().Format(clockLayout)
}

// Stamp formats t as today's clock time, or with the date when t is not
// on the same local day as now.
func Stamp(t, now time.Time) string {
	ty, tm, td := t.Local().Date()
	ny, nm, nd := now.Local().Date()
	if ty == ny && tm == nm && td == nd {
		return Clock(t)
	}
	return DateTime(t)
}

// Duration renders d with a unit suited to its size.
// Example output: "850µs", "12ms", "1.5s", "2m05s"
func Duration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		s := d.Round(100 * time.Millisecond).Seconds()
		if s == float64(int64(s)) {
			return fmt.Sprintf("%ds", int64(s))
		}
		return fmt.Sprintf("%.1fs", s)
	default:
		d = d.Round(time.Second)
		return fmt.Sprintf("%dm%02ds", int64(d/time.Minute), int64(d%time.Minute/time.Second))
	}
}
