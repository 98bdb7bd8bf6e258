package task

import "time"

// Urgency scoring maps a deadline and priority onto [10, 100].
//
// Base score by time bucket, then a priority multiplier, then a cap at
// 100. Overdue tasks land in the <=24h bucket and score maximally.

const (
	// invalidDeadlineScore is returned when the deadline cannot be parsed.
	invalidDeadlineScore = 10

	// decayFloor is the minimum base score for far-future deadlines.
	decayFloor = 10

	maxScore = 100
)

// priorityMultipliers adjusts urgency by priority. Priority 4 (Critical)
// is intentionally absent: it falls through to the neutral 1.0, same as
// Medium. Matches the original scoring table.
var priorityMultipliers = map[int]float64{
	PriorityLow:    0.8,
	PriorityMedium: 1.0,
	PriorityHigh:   1.2,
}

// Score computes the urgency for a parsed deadline and priority at the
// given reference time.
func Score(d Deadline, priority int, now time.Time) float64 {
	hours, ok := d.HoursUntil(now)
	if !ok {
		return invalidDeadlineScore
	}

	var urgency float64
	switch {
	case hours <= 24:
		urgency = 100
	case hours <= 48:
		urgency = 80
	case hours <= 72:
		urgency = 60
	default:
		urgency = 100 - hours/24
		if urgency < decayFloor {
			urgency = decayFloor
		}
	}

	multiplier, ok := priorityMultipliers[priority]
	if !ok {
		multiplier = 1.0
	}
	urgency *= multiplier

	if urgency > maxScore {
		urgency = maxScore
	}
	return urgency
}

// UrgencyScoreAt computes the task's urgency at the given reference time.
func (t *Task) UrgencyScoreAt(now time.Time) float64 {
	return Score(ParseDeadline(t.Deadline), t.Priority, now)
}
