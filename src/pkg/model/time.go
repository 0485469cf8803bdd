package model

import (
	"fmt"
	"time"
)

// RelativeTime renders a timestamp relative to now: "just now", minutes,
// hours, "yesterday", days, and an absolute date beyond a week.
func RelativeTime(ts, now time.Time) string {
	diff := now.Sub(ts)
	mins := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	switch {
	case mins < 1:
		return "just now"
	case mins < 60:
		return fmt.Sprintf("%d minutes ago", mins)
	case hours < 24:
		return fmt.Sprintf("%d hours ago", hours)
	case days == 1:
		return "yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return ts.Format("Monday, 2 January 2006")
	}
}
