package adapters

import (
	"maps"
	"sort"
	"time"

	"github.com/edu-tools/mentor-dashboard/pkg/models/api"
	"github.com/edu-tools/mentor-dashboard/pkg/models/domain"
)

func MapWeekSummaryDomainToApi(s domain.WeekSummary) api.WeekSummary {
	return api.WeekSummary{
		TotalHours:        s.TotalHours,
		NumParticipants:   s.NumParticipants,
		AvgHoursPerPerson: s.AvgHoursPerPerson,
		Activities:        maps.Clone(s.Activities),
		Categories:        maps.Clone(s.Categories),
		Users:             maps.Clone(s.Users),
	}
}

func MapWeeklyReportDomainToApi(r domain.WeeklyReport) api.WeeklyReport {
	individual := make(map[string]api.WeekSummary, len(r.IndividualSummaries))
	for user, s := range r.IndividualSummaries {
		individual[user] = MapWeekSummaryDomainToApi(s)
	}

	return api.WeeklyReport{
		Team:                r.Team,
		WeekStart:           r.WeekStart,
		WeekEnd:             r.WeekEnd,
		TotalHours:          r.TotalHours,
		NumParticipants:     r.NumParticipants,
		AvgHoursPerPerson:   r.AvgHoursPerPerson,
		IndividualSummaries: individual,
		TeamActivities:      maps.Clone(r.TeamActivities),
		TeamCategories:      maps.Clone(r.TeamCategories),
		ActivityTrends:      mapTrends(r.ActivityTrends),
		CategoryTrends:      mapTrends(r.CategoryTrends),
	}
}

func MapWeeklySeriesDomainToApi(weekly map[time.Time]float64) []api.WeeklyPoint {
	points := make([]api.WeeklyPoint, 0, len(weekly))
	for week, hours := range weekly {
		points = append(points, api.WeeklyPoint{WeekStart: week, Hours: hours})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].WeekStart.Before(points[j].WeekStart) })
	return points
}

func MapUserHistoryDomainToApi(user, team string, h domain.UserHistory, trend domain.Trend) api.UserHistory {
	return api.UserHistory{
		User:              user,
		Team:              team,
		UserWeekly:        MapWeeklySeriesDomainToApi(h.UserWeekly),
		TeamAvgWeekly:     MapWeeklySeriesDomainToApi(h.TeamAvgWeekly),
		AllTeamsAvgWeekly: MapWeeklySeriesDomainToApi(h.AllTeamsAvgWeekly),
		Trend:             string(trend),
	}
}

func mapTrends(trends map[string]domain.Trend) map[string]string {
	out := make(map[string]string, len(trends))
	for label, trend := range trends {
		out[label] = string(trend)
	}
	return out
}
