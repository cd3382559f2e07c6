package korean

import (
	"fmt"
	"math"
	"time"
)

// DDay returns the number of days from now until target, both normalized to
// midnight. Positive means the date is ahead, negative means it has passed.
func DDay(target, now time.Time) int {
	t := dateOnly(target)
	n := dateOnly(now)
	return int(math.Ceil(t.Sub(n).Hours() / 24))
}

// DaysSince returns whole days elapsed since t.
func DaysSince(t, now time.Time) int {
	d := now.Sub(t)
	if d < 0 {
		return 0
	}
	return int(d.Hours() / 24)
}

// FormatDDay renders D-Day notation: "D-3", "D-Day", "D+2".
func FormatDDay(days int) string {
	switch {
	case days == 0:
		return "D-Day"
	case days > 0:
		return fmt.Sprintf("D-%d", days)
	default:
		return fmt.Sprintf("D+%d", -days)
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
