package history

import (
	"fmt"
	"time"
)

// RelativeDate renders a point in time as a short human label relative to
// now. Buckets are rolling 24-hour windows on the absolute difference:
// under 24h is "Today", under 48h "Yesterday", up to a week "N days ago",
// older dates fall back to an absolute "Jan 2, 2006". Pure function.
func RelativeDate(t, now time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}
	days := int(diff / (24 * time.Hour))
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Format("Jan 2, 2006")
	}
}
