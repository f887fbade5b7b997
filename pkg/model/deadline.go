package model

import "time"

// Urgency is the three-tier deadline classification.
type Urgency string

const (
	UrgencyUrgent  Urgency = "urgent"
	UrgencyWarning Urgency = "warning"
	UrgencyDefault Urgency = "default"
)

// Overdue is the working-day sentinel for deadlines already in the past.
const Overdue = -1

// DeadlineDate is the wire format for deadlines.
const DeadlineDate = "2006-01-02"

// WorkingDaysUntil returns the number of working days (Mon-Fri) from
// today until the deadline, counting the days strictly after today up to
// and including the deadline. A deadline before today returns Overdue.
// Both dates are normalized to local midnight first, so the time of day
// never shifts the count.
func WorkingDaysUntil(deadline, today time.Time) int {
	d := midnight(deadline)
	now := midnight(today)

	if d.Before(now) {
		return Overdue
	}

	days := 0
	for cur := now.AddDate(0, 0, 1); !cur.After(d); cur = cur.AddDate(0, 0, 1) {
		wd := cur.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			continue
		}
		days++
	}
	return days
}

// ClassifyDeadline parses an ISO date and maps its working-day distance
// to an urgency tier. The Overdue sentinel satisfies remaining < 5 and
// therefore classifies as urgent: overdue is maximally urgent, not a
// separate tier. Unparseable input gets the default tier.
func ClassifyDeadline(deadline string, today time.Time) (int, Urgency) {
	d, err := time.ParseInLocation(DeadlineDate, deadline, today.Location())
	if err != nil {
		return 0, UrgencyDefault
	}
	remaining := WorkingDaysUntil(d, today)
	return remaining, ClassifyRemaining(remaining)
}

// ClassifyRemaining maps a working-day count to its urgency tier.
func ClassifyRemaining(remaining int) Urgency {
	switch {
	case remaining < 5:
		return UrgencyUrgent
	case remaining < 10:
		return UrgencyWarning
	default:
		return UrgencyDefault
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
