package report

import (
	"time"

	"github.com/edu-tools/mentor-dashboard/pkg/models/domain"
)

// UserHistory builds the three weekly series behind an individual trend
// chart: the user's own hours, their team's average excluding them, and the
// average across every team. Weeks without data are absent from a series,
// never zero; the chart layer reconciles the key sets.
func UserHistory(entries []domain.TimeEntry, user, team string) domain.UserHistory {
	grouped := GroupByTeamAndWeek(entries)

	userWeekly := make(map[time.Time]float64)
	teamAvgWeekly := make(map[time.Time]float64)

	for week, weekEntries := range grouped[team] {
		var userHours float64
		others := make(map[string]float64)

		for _, e := range weekEntries {
			if e.User == user {
				userHours += e.DurationHours
			} else {
				others[e.User] += e.DurationHours
			}
		}

		if userHours > 0 {
			userWeekly[week] = userHours
		}
		if len(others) > 0 {
			var total float64
			for _, h := range others {
				total += h
			}
			teamAvgWeekly[week] = total / float64(len(others))
		}
	}

	allTeamsAvgWeekly := make(map[time.Time]float64)
	perWeekUsers := make(map[time.Time]map[string]float64)
	for _, weeks := range grouped {
		for week, weekEntries := range weeks {
			userHours, ok := perWeekUsers[week]
			if !ok {
				userHours = make(map[string]float64)
				perWeekUsers[week] = userHours
			}
			for _, e := range weekEntries {
				userHours[e.User] += e.DurationHours
			}
		}
	}
	for week, userHours := range perWeekUsers {
		if len(userHours) == 0 {
			continue
		}
		var total float64
		for _, h := range userHours {
			total += h
		}
		allTeamsAvgWeekly[week] = total / float64(len(userHours))
	}

	return domain.UserHistory{
		UserWeekly:        userWeekly,
		TeamAvgWeekly:     teamAvgWeekly,
		AllTeamsAvgWeekly: allTeamsAvgWeekly,
	}
}

// AllTeamsHistory returns per-team weekly hour totals for the comparison
// chart. Flat sums, no averaging.
func AllTeamsHistory(entries []domain.TimeEntry) map[string]map[time.Time]float64 {
	grouped := GroupByTeamAndWeek(entries)

	totals := make(map[string]map[time.Time]float64, len(grouped))
	for team, weeks := range grouped {
		totals[team] = make(map[time.Time]float64, len(weeks))
		for week, weekEntries := range weeks {
			var sum float64
			for _, e := range weekEntries {
				sum += e.DurationHours
			}
			totals[team][week] = sum
		}
	}

	return totals
}

// UserWeeklySeries flattens a user's weekly map into a chronologically
// ordered slice of hours, the shape RollingTrend consumes.
func UserWeeklySeries(history domain.UserHistory) []float64 {
	weeks := sortedWeeks(history.UserWeekly)
	series := make([]float64, 0, len(weeks))
	for _, w := range weeks {
		series = append(series, history.UserWeekly[w])
	}
	return series
}
