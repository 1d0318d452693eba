package utils

import (
	"fmt"
	"time"
)

// DateKey formats a time as the calendar-day key used by history entries.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatClock renders a seconds count as M:SS for timer displays.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
