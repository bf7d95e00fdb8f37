package domain

import "fmt"

// DurationNotAvailable is rendered instead of "0 min" for zero or
// negative durations
const DurationNotAvailable = "not available"

// FormatDuration renders a duration in minutes for display:
// "45 min", "2h", "1h 15min". Zero and negative durations render
// an explicit "not available" string.
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return DurationNotAvailable
	}

	if minutes < MinutesPerHour {
		return fmt.Sprintf("%d min", minutes)
	}

	hours := minutes / MinutesPerHour
	remainder := minutes % MinutesPerHour

	if remainder == 0 {
		return fmt.Sprintf("%dh", hours)
	}

	return fmt.Sprintf("%dh %dmin", hours, remainder)
}
