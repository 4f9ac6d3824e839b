package tournament

import (
	"strings"
	"time"
)

// ParseDate attempts to parse a tournament Date display string into a
// time.Time. Returns the zero time if parsing fails; callers treat an
// unparseable date as "unknown" and fall back to string ordering.
//
// The BVV page uses German day.month.year notation, sometimes with a
// weekday prefix ("Sa., 03.05.2025") and sometimes as a range
// ("03.05. - 04.05.2025"); for ranges the first day is used.
func ParseDate(dateText string) time.Time {
	text := strings.TrimSpace(dateText)
	if text == "" {
		return time.Time{}
	}

	// Strip a leading weekday prefix such as "Sa., " or "So. ".
	if idx := strings.Index(text, ", "); idx != -1 && idx <= 4 {
		text = strings.TrimSpace(text[idx+2:])
	}

	// For ranges keep the start day, borrowing the year from the end.
	if from, to, ok := strings.Cut(text, " - "); ok {
		from = strings.TrimSpace(from)
		to = strings.TrimSpace(to)
		if strings.HasSuffix(from, ".") && len(to) >= 4 {
			from += to[len(to)-4:]
		}
		text = from
	}

	for _, layout := range []string{"02.01.2006", "2.1.2006", "02.01.06", "2.1.06"} {
		if t, err := time.Parse(layout, text); err == nil {
			return t
		}
	}

	// Day and month without year ("03.05."): assume the current year.
	if t, err := time.Parse("02.01.", text); err == nil {
		now := time.Now()
		return time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}

	return time.Time{}
}
