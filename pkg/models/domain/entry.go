package domain

import "time"

// TimeEntry is a single logged time record, produced once per run by the
// CSV parser and never mutated afterwards. User is the post-resolution
// display name and is treated as an opaque stable identifier.
type TimeEntry struct {
	Project       string
	User          string
	Group         string
	StartDate     time.Time
	EndDate       time.Time
	DurationHours float64
	Activity      string
	Category      string
	Description   string
}

// WeekStart returns the Monday at 00:00:00 of the week containing StartDate.
// Invariant: WeekStart() <= StartDate < WeekStart() + 7 days.
func (e TimeEntry) WeekStart() time.Time {
	return WeekOf(e.StartDate)
}

// WeekOf floors t to the Monday of its calendar week. Every place entries
// are bucketed by week uses this single function so the aggregator and the
// historical series builder bucket identically.
func WeekOf(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -daysSinceMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}
