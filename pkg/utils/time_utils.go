package utils

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ConvertTo24Hour normalizes an item time to "HH:mm". Accepts "h:mm AM/PM"
// (any case) and already-normalized "HH:mm"; idempotent, so feeding its own
// output back returns the same string. Unparseable input is returned as-is.
func ConvertTo24Hour(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return trimmed
	}

	if t, err := time.Parse("15:04", trimmed); err == nil {
		return t.Format("15:04")
	}

	upper := strings.ToUpper(trimmed)
	for _, layout := range []string{"3:04 PM", "3:04PM"} {
		if t, err := time.Parse(layout, upper); err == nil {
			return t.Format("15:04")
		}
	}

	return trimmed
}

// ParseDate parses a plan date in "YYYY-MM-DD" form (UTC).
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// PlanDayCount returns the inclusive number of days between start and end.
func PlanDayCount(start, end time.Time) int {
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
