package task

import (
	"strings"
	"time"
)

// deadlineLayouts are tried in order when parsing a deadline string.
var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Deadline is the result of parsing a deadline string. An unparseable
// deadline yields Valid=false rather than an error; the scorer and the
// fallback sort both handle that case explicitly.
type Deadline struct {
	Time  time.Time
	Valid bool
}

// ParseDeadline parses a free-form deadline string in the local timezone.
func ParseDeadline(input string) Deadline {
	return ParseDeadlineIn(input, time.Local)
}

// ParseDeadlineIn parses a deadline string in the given location.
func ParseDeadlineIn(input string, loc *time.Location) Deadline {
	input = strings.TrimSpace(input)
	if input == "" {
		return Deadline{}
	}

	for _, layout := range deadlineLayouts {
		if layout == time.RFC3339 {
			if parsed, err := time.Parse(layout, input); err == nil {
				return Deadline{Time: parsed.In(loc), Valid: true}
			}
			continue
		}
		if parsed, err := time.ParseInLocation(layout, input, loc); err == nil {
			return Deadline{Time: parsed, Valid: true}
		}
	}

	return Deadline{}
}

// HoursUntil returns the signed number of hours from now until the
// deadline. Negative means overdue. Returns 0, false for an invalid
// deadline.
func (d Deadline) HoursUntil(now time.Time) (float64, bool) {
	if !d.Valid {
		return 0, false
	}
	return d.Time.Sub(now).Hours(), true
}
