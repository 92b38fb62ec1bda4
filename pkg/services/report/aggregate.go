package report

import (
	"time"

	"github.com/edu-tools/mentor-dashboard/pkg/models/domain"
)

// Summarize computes aggregate statistics over a group of entries. It is
// total: an empty input yields a zero summary with empty (non-nil) maps.
func Summarize(entries []domain.TimeEntry) domain.WeekSummary {
	activities := make(map[string]float64)
	categories := make(map[string]float64)
	users := make(map[string]float64)

	for _, e := range entries {
		activities[e.Activity] += e.DurationHours
		categories[e.Category] += e.DurationHours
		users[e.User] += e.DurationHours
	}

	var total float64
	for _, h := range users {
		total += h
	}

	avg := 0.0
	if len(users) > 0 {
		avg = total / float64(len(users))
	}

	return domain.WeekSummary{
		TotalHours:        total,
		NumParticipants:   len(users),
		AvgHoursPerPerson: avg,
		Activities:        activities,
		Categories:        categories,
		Users:             users,
	}
}

// GroupByTeamAndWeek partitions entries into per-team, per-week buckets.
// Every entry lands in exactly one bucket determined solely by its own
// group and WeekStart; entries within a bucket keep input order.
func GroupByTeamAndWeek(entries []domain.TimeEntry) map[string]map[time.Time][]domain.TimeEntry {
	grouped := make(map[string]map[time.Time][]domain.TimeEntry)

	for _, e := range entries {
		weeks, ok := grouped[e.Group]
		if !ok {
			weeks = make(map[time.Time][]domain.TimeEntry)
			grouped[e.Group] = weeks
		}
		week := e.WeekStart()
		weeks[week] = append(weeks[week], e)
	}

	return grouped
}

// GroupByUser buckets a single week's entries per user, keeping input order.
func GroupByUser(entries []domain.TimeEntry) map[string][]domain.TimeEntry {
	byUser := make(map[string][]domain.TimeEntry)
	for _, e := range entries {
		byUser[e.User] = append(byUser[e.User], e)
	}
	return byUser
}
