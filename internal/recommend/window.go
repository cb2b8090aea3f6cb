package recommend

import (
	"strings"
	"time"
)

var deadlineLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// ParseDeadline reads a deadline as a calendar date in loc.
func ParseDeadline(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return dateOf(t.In(loc)), true
		}
	}
	return time.Time{}, false
}

// InWindow reports whether deadline falls between today and today+days,
// both inclusive, comparing calendar dates in now's location. Missing or
// unparsable deadlines are never in the window.
func InWindow(deadline string, now time.Time, days int) bool {
	d, ok := ParseDeadline(deadline, now.Location())
	if !ok {
		return false
	}
	today := dateOf(now)
	end := today.AddDate(0, 0, days)
	return !d.Before(today) && !d.After(end)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
