package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/edu-tools/mentor-dashboard/pkg/models/domain"
)

// BuildReports turns a batch of entries into one WeeklyReport per
// (team, week) bucket, ordered by team ascending and week descending.
//
// Trends are computed in a first pass over a chronologically sorted view of
// each team's weeks, carrying the previous week's activity and category
// totals forward as baselines. The second pass assembles reports over a
// separately sorted display view. The two orderings are independent slices
// over the same bucket map; reversing the display never touches the trend
// pass.
func BuildReports(entries []domain.TimeEntry) []domain.WeeklyReport {
	grouped := GroupByTeamAndWeek(entries)

	var reports []domain.WeeklyReport

	for team, weeks := range grouped {
		chronological := sortedWeeks(weeks)
		display := make([]time.Time, len(chronological))
		for i, w := range chronological {
			display[len(chronological)-1-i] = w
		}

		type weekTrends struct {
			activities map[string]domain.Trend
			categories map[string]domain.Trend
		}
		trendsByWeek := make(map[time.Time]weekTrends, len(chronological))

		prevActivities := map[string]float64{}
		prevCategories := map[string]float64{}
		for _, week := range chronological {
			summary := Summarize(weeks[week])
			trendsByWeek[week] = weekTrends{
				activities: CalculateTrends(summary.Activities, prevActivities),
				categories: CalculateTrends(summary.Categories, prevCategories),
			}
			prevActivities = summary.Activities
			prevCategories = summary.Categories
		}

		for _, week := range display {
			weekEntries := weeks[week]
			summary := Summarize(weekEntries)

			individual := make(map[string]domain.WeekSummary)
			for user, userEntries := range GroupByUser(weekEntries) {
				individual[user] = Summarize(userEntries)
			}

			trends := trendsByWeek[week]
			reports = append(reports, domain.WeeklyReport{
				Team:                team,
				WeekStart:           week,
				WeekEnd:             week.AddDate(0, 0, 6),
				TotalHours:          summary.TotalHours,
				NumParticipants:     summary.NumParticipants,
				AvgHoursPerPerson:   summary.AvgHoursPerPerson,
				IndividualSummaries: individual,
				TeamActivities:      summary.Activities,
				TeamCategories:      summary.Categories,
				ActivityTrends:      trends.activities,
				CategoryTrends:      trends.categories,
			})
		}
	}

	sort.Slice(reports, func(i, j int) bool {
		if reports[i].Team != reports[j].Team {
			return reports[i].Team < reports[j].Team
		}
		return reports[i].WeekStart.After(reports[j].WeekStart)
	})

	return reports
}

func sortedWeeks[V any](weeks map[time.Time]V) []time.Time {
	keys := make([]time.Time, 0, len(weeks))
	for w := range weeks {
		keys = append(keys, w)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })
	return keys
}

// FormatWeekRange renders a week as "January 13-19, 2026", spelling both
// months out when the week spans a month boundary.
func FormatWeekRange(weekStart time.Time) string {
	weekEnd := weekStart.AddDate(0, 0, 6)

	if weekStart.Month() == weekEnd.Month() {
		return fmt.Sprintf("%s-%s", weekStart.Format("January 02"), weekEnd.Format("02, 2006"))
	}
	return fmt.Sprintf("%s - %s", weekStart.Format("January 02"), weekEnd.Format("January 02, 2006"))
}
