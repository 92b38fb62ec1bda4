package report

import (
	"testing"
	"time"

	"github.com/edu-tools/mentor-dashboard/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func entry(user, team string, start time.Time, hours float64, activity, category string) domain.TimeEntry {
	return domain.TimeEntry{
		Project:       "Capstone",
		User:          user,
		Group:         team,
		StartDate:     start,
		EndDate:       start.Add(time.Duration(hours * float64(time.Hour))),
		DurationHours: hours,
		Activity:      activity,
		Category:      category,
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.Zero(t, s.TotalHours)
	assert.Zero(t, s.NumParticipants)
	assert.Zero(t, s.AvgHoursPerPerson)
	assert.Empty(t, s.Activities)
	assert.Empty(t, s.Categories)
	assert.Empty(t, s.Users)
}

func TestSummarize_TotalsMatchUserSums(t *testing.T) {
	monday := time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)
	entries := []domain.TimeEntry{
		entry("alice", "TeamA", monday, 5, "Coding", "Dev"),
		entry("alice", "TeamA", monday.AddDate(0, 0, 1), 2.5, "Testing", "QA"),
		entry("bob", "TeamA", monday, 4, "Coding", "Dev"),
	}

	s := Summarize(entries)

	assert.InDelta(t, 11.5, s.TotalHours, 1e-9)
	assert.Equal(t, 2, s.NumParticipants)
	assert.InDelta(t, 5.75, s.AvgHoursPerPerson, 1e-9)
	assert.InDelta(t, 9.0, s.Activities["Coding"], 1e-9)
	assert.InDelta(t, 2.5, s.Activities["Testing"], 1e-9)
	assert.InDelta(t, 9.0, s.Categories["Dev"], 1e-9)

	var userSum float64
	for _, h := range s.Users {
		userSum += h
	}
	assert.InDelta(t, s.TotalHours, userSum, 1e-9)
}

func TestGroupByTeamAndWeek_Partition(t *testing.T) {
	week1 := time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC)
	week2 := time.Date(2026, 1, 19, 10, 0, 0, 0, time.UTC)
	entries := []domain.TimeEntry{
		entry("alice", "TeamA", week1, 5, "Coding", "Dev"),
		entry("bob", "TeamA", week1.AddDate(0, 0, 3), 3, "Coding", "Dev"),
		entry("alice", "TeamA", week2, 10, "Testing", "QA"),
		entry("carol", "TeamB", week1, 2, "Writing", "Docs"),
	}

	grouped := GroupByTeamAndWeek(entries)

	assert.Len(t, grouped, 2)
	assert.Len(t, grouped["TeamA"], 2)
	assert.Len(t, grouped["TeamB"], 1)

	// Union of buckets must equal the input, nothing dropped or duplicated.
	var count int
	for _, weeks := range grouped {
		for week, bucket := range weeks {
			for _, e := range bucket {
				count++
				assert.Equal(t, week, e.WeekStart())
			}
		}
	}
	assert.Equal(t, len(entries), count)
}

func TestGroupByTeamAndWeek_EntriesOnSundayStayInWeek(t *testing.T) {
	sunday := time.Date(2026, 1, 18, 23, 30, 0, 0, time.UTC)
	grouped := GroupByTeamAndWeek([]domain.TimeEntry{
		entry("alice", "TeamA", sunday, 1, "Coding", "Dev"),
	})

	monday := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	assert.Contains(t, grouped["TeamA"], monday)
}

func TestWeekOf_MondayFloor(t *testing.T) {
	monday := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 7; day++ {
		ts := monday.AddDate(0, 0, day).Add(13 * time.Hour)
		assert.Equal(t, monday, domain.WeekOf(ts), "day offset %d", day)
	}
}
