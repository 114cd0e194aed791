package ui

import (
	"fmt"
	"time"
)

// FormatDate renders a timestamp as dd.mm.yyyy, or "-" when nil.
func FormatDate(value *time.Time) string {
	if value == nil {
		return "-"
	}
	return value.Format("02.01.2006")
}

// FormatDateTime renders a timestamp as dd.mm.yyyy hh:mm.
func FormatDateTime(value time.Time) string {
	return value.Format("02.01.2006 15:04")
}

// FormatTimeAgo returns a compact age string like "2m ago".
func FormatTimeAgo(then time.Time, now time.Time) string {
	if then.IsZero() || then.After(now) {
		return "-"
	}
	return FormatDurationShort(now.Sub(then)) + " ago"
}

// FormatUntil returns a compact countdown like "in 3d", or "2d over" for
// a moment already passed.
func FormatUntil(then time.Time, now time.Time) string {
	if then.IsZero() {
		return "-"
	}
	if then.Before(now) {
		return FormatDurationShort(now.Sub(then)) + " over"
	}
	return "in " + FormatDurationShort(then.Sub(now))
}

// FormatDurationShort formats a duration using short units (s/m/h/d).
func FormatDurationShort(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}

	duration = duration.Truncate(time.Second)
	seconds := int64(duration.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}

	days := hours / 24
	return fmt.Sprintf("%dd", days)
}
