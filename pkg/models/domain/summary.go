package domain

// WeekSummary holds aggregate statistics for one group of entries, typically
// a single (team, week) bucket or one user's slice of it.
// Invariant: the sum of Users values equals TotalHours.
type WeekSummary struct {
	TotalHours        float64
	NumParticipants   int
	AvgHoursPerPerson float64
	Activities        map[string]float64
	Categories        map[string]float64
	Users             map[string]float64
}
