package pdf

import (
	"fmt"
	"sort"
	"time"

	"github.com/edu-tools/mentor-dashboard/pkg/charts"
	"github.com/edu-tools/mentor-dashboard/pkg/models/domain"
	"github.com/edu-tools/mentor-dashboard/pkg/services/report"
	"github.com/samber/lo"
)

// addWeeklyReport renders one (team, week) section in the fixed order:
// header, summary, trend tables, individual status table, per-user charts,
// team charts and distribution table, page break. Historical trend charts
// appear only on each team's most-recent week.
func (d *document) addWeeklyReport(r domain.WeeklyReport, allEntries []domain.TimeEntry) {
	d.pdf.AddPage()

	d.pdf.SetFont("Helvetica", "B", 18)
	d.pdf.SetTextColor(214, 39, 40)
	d.pdf.CellFormat(0, 11, "Team: "+r.Team, "", 1, "L", false, 0, "")

	d.pdf.SetFont("Helvetica", "B", 14)
	d.pdf.SetTextColor(44, 160, 44)
	d.pdf.CellFormat(0, 9, "Week of "+report.FormatWeekRange(r.WeekStart), "", 1, "L", false, 0, "")
	d.pdf.Ln(4)

	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.SetFont("Helvetica", "", 11)
	summary := fmt.Sprintf("Total Hours: %.1fh   |   Participants: %d   |   Average per Person: %.1fh",
		r.TotalHours, r.NumParticipants, r.AvgHoursPerPerson)
	d.pdf.CellFormat(0, 8, summary, "", 1, "L", false, 0, "")
	d.pdf.Ln(4)

	if len(r.ActivityTrends) > 0 {
		d.addTrendTable("Activity Trends", r.TeamActivities, r.ActivityTrends)
	}
	if len(r.CategoryTrends) > 0 {
		d.addTrendTable("Category Trends", r.TeamCategories, r.CategoryTrends)
	}

	d.sectionHeading("Individual Time Distribution")
	if d.gen.ExpectedHours > 0 {
		d.addStudentStatusTable(r, allEntries)
	}

	mostRecent := isMostRecentWeek(r, allEntries)

	users := lo.Keys(r.IndividualSummaries)
	sort.Strings(users)
	for _, user := range users {
		d.addUserCharts(user, r.IndividualSummaries[user])
		if mostRecent {
			d.addUserTrendChart(user, r.Team, allEntries)
		}
	}

	d.sectionHeading(fmt.Sprintf("Team %s - Combined Time Distribution", r.Team))
	if d.gen.ExpectedHours > 0 {
		d.addTeamDistributionTable(r)
	}
	d.addTeamCharts(r)

	if mostRecent {
		d.addTeamComparisonChart(r.Team, allEntries)
	}
}

func (d *document) sectionHeading(title string) {
	d.pdf.Ln(4)
	d.pdf.SetFont("Helvetica", "B", 13)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	d.pdf.Ln(2)
}

// addTrendTable renders a label/hours/trend table over the union-of-keys
// trend mapping: labels that vanished this week keep a row with 0.0h so the
// down indicator stays visible.
func (d *document) addTrendTable(title string, data map[string]float64, trends map[string]domain.Trend) {
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")

	type row struct {
		label string
		hours float64
	}
	rows := make([]row, 0, len(trends))
	for label := range trends {
		rows = append(rows, row{label, data[label]})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].hours != rows[j].hours {
			return rows[i].hours > rows[j].hours
		}
		return rows[i].label < rows[j].label
	})

	d.pdf.SetFont("Helvetica", "B", 10)
	d.pdf.SetFillColor(230, 242, 255)
	d.pdf.CellFormat(80, 8, "Activity/Category", "1", 0, "L", true, 0, "")
	d.pdf.CellFormat(30, 8, "Hours", "1", 0, "C", true, 0, "")
	d.pdf.CellFormat(30, 8, "Trend", "1", 1, "C", true, 0, "")

	d.pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		d.pdf.CellFormat(80, 8, row.label, "1", 0, "L", false, 0, "")
		d.pdf.CellFormat(30, 8, fmt.Sprintf("%.1fh", row.hours), "1", 0, "C", false, 0, "")
		d.pdf.CellFormat(30, 8, trends[row.label].Label(), "1", 1, "C", false, 0, "")
	}

	d.pdf.SetFont("Helvetica", "I", 8)
	d.pdf.SetTextColor(102, 102, 102)
	d.pdf.CellFormat(0, 6, "Trend Key: Up = increased | Down = decreased | Flat = no change | New = new activity/category", "", 1, "L", false, 0, "")
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.Ln(4)
}

func (d *document) addStudentStatusTable(r domain.WeeklyReport, allEntries []domain.TimeEntry) {
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.CellFormat(0, 8, "Student Hours Status", "", 1, "L", false, 0, "")

	type row struct {
		user  string
		hours float64
	}
	rows := make([]row, 0, len(r.IndividualSummaries))
	for user, s := range r.IndividualSummaries {
		rows = append(rows, row{user, s.TotalHours})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].hours != rows[j].hours {
			return rows[i].hours > rows[j].hours
		}
		return rows[i].user < rows[j].user
	})

	d.pdf.SetFont("Helvetica", "B", 9)
	d.pdf.SetFillColor(230, 243, 255)
	d.pdf.CellFormat(45, 8, "Student", "1", 0, "L", true, 0, "")
	d.pdf.CellFormat(30, 8, "Hours This Week", "1", 0, "C", true, 0, "")
	d.pdf.CellFormat(65, 8, "Status", "1", 0, "L", true, 0, "")
	d.pdf.CellFormat(25, 8, "Time Trend", "1", 1, "C", true, 0, "")

	for _, row := range rows {
		status := report.Classify(row.hours, d.gen.ExpectedHours)
		red, green, blue := statusColor(status.Tier)

		history := report.UserHistory(allEntries, row.user, r.Team)
		trend := report.RollingTrend(report.UserWeeklySeries(history))

		d.pdf.SetFont("Helvetica", "", 9)
		d.pdf.SetTextColor(0, 0, 0)
		d.pdf.CellFormat(45, 8, row.user, "1", 0, "L", false, 0, "")

		d.pdf.SetFont("Helvetica", "B", 9)
		d.pdf.SetTextColor(red, green, blue)
		d.pdf.CellFormat(30, 8, fmt.Sprintf("%.1fh", row.hours), "1", 0, "C", false, 0, "")
		d.pdf.SetFont("Helvetica", "", 9)
		d.pdf.CellFormat(65, 8, status.Label, "1", 0, "L", false, 0, "")

		d.pdf.SetTextColor(0, 0, 0)
		d.pdf.CellFormat(25, 8, trend.Label(), "1", 1, "C", false, 0, "")
	}

	d.pdf.SetFont("Helvetica", "I", 8)
	d.pdf.SetTextColor(102, 102, 102)
	d.pdf.CellFormat(0, 6, fmt.Sprintf(
		"Expected Hours: %.1fh/week | Green: meeting expectations | Orange: 15-30%% off target | Red: >30%% off target",
		d.gen.ExpectedHours), "", 1, "L", false, 0, "")
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.Ln(4)
}

func (d *document) addTeamDistributionTable(r domain.WeeklyReport) {
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.CellFormat(0, 8, "Team Time Distribution", "", 1, "L", false, 0, "")

	expectedTeam := d.gen.ExpectedHours * float64(r.NumParticipants)
	teamStatus := report.Classify(r.TotalHours, expectedTeam)
	red, green, blue := statusColor(teamStatus.Tier)

	d.pdf.SetFont("Helvetica", "B", 9)
	d.pdf.SetFillColor(230, 243, 255)
	d.pdf.CellFormat(55, 8, "Metric", "1", 0, "L", true, 0, "")
	d.pdf.CellFormat(40, 8, "Value", "1", 0, "C", true, 0, "")
	d.pdf.CellFormat(70, 8, "Status", "1", 1, "L", true, 0, "")

	d.pdf.SetFont("Helvetica", "", 9)
	d.pdf.CellFormat(55, 8, "Total Team Hours", "1", 0, "L", false, 0, "")
	d.pdf.SetTextColor(red, green, blue)
	d.pdf.SetFont("Helvetica", "B", 9)
	d.pdf.CellFormat(40, 8, fmt.Sprintf("%.1fh", r.TotalHours), "1", 0, "C", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 9)
	d.pdf.CellFormat(70, 8, teamStatus.Label, "1", 1, "L", false, 0, "")
	d.pdf.SetTextColor(0, 0, 0)

	d.pdf.CellFormat(55, 8, "Expected Team Hours", "1", 0, "L", false, 0, "")
	d.pdf.CellFormat(40, 8, fmt.Sprintf("%.1fh", expectedTeam), "1", 0, "C", false, 0, "")
	d.pdf.CellFormat(70, 8, fmt.Sprintf("%d x %.1fh", r.NumParticipants, d.gen.ExpectedHours), "1", 1, "L", false, 0, "")

	avgStatus := report.Classify(r.AvgHoursPerPerson, d.gen.ExpectedHours)
	red, green, blue = statusColor(avgStatus.Tier)
	d.pdf.CellFormat(55, 8, "Average per Person", "1", 0, "L", false, 0, "")
	d.pdf.SetTextColor(red, green, blue)
	d.pdf.SetFont("Helvetica", "B", 9)
	d.pdf.CellFormat(40, 8, fmt.Sprintf("%.1fh", r.AvgHoursPerPerson), "1", 0, "C", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 9)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.CellFormat(70, 8, fmt.Sprintf("Target: %.1fh", d.gen.ExpectedHours), "1", 1, "L", false, 0, "")

	if expectedTeam > 0 {
		pct := r.TotalHours / expectedTeam * 100
		d.pdf.CellFormat(55, 8, "Team Performance", "1", 0, "L", false, 0, "")
		d.pdf.CellFormat(40, 8, fmt.Sprintf("%.0f%% of target", pct), "1", 0, "C", false, 0, "")
		d.pdf.CellFormat(70, 8, performanceWord(pct), "1", 1, "L", false, 0, "")
	}
	d.pdf.Ln(4)
}

func performanceWord(pct float64) string {
	switch {
	case pct > 115:
		return "Above target"
	case pct < 85:
		return "Below target"
	default:
		return "On target"
	}
}

func (d *document) addUserCharts(user string, summary domain.WeekSummary) {
	d.pdf.SetFont("Helvetica", "B", 11)
	d.pdf.CellFormat(0, 8, user, "", 1, "L", false, 0, "")

	categoryPNG, err := charts.PieChart(summary.Categories,
		fmt.Sprintf("%s - Time by Category", user), charts.KindCategory, d.gen.Registry)
	if err != nil {
		d.gen.Logger.Warn().Err(err).Str("user", user).Msg("category chart failed")
		categoryPNG = nil
	}
	d.embedPNG(categoryPNG, 85, fmt.Sprintf("%s category chart", user))

	activityPNG, err := charts.PieChart(summary.Activities,
		fmt.Sprintf("%s - Time by Activity", user), charts.KindActivity, d.gen.Registry)
	if err != nil {
		d.gen.Logger.Warn().Err(err).Str("user", user).Msg("activity chart failed")
		activityPNG = nil
	}
	d.embedPNG(activityPNG, 85, fmt.Sprintf("%s activity chart", user))
}

func (d *document) addUserTrendChart(user, team string, allEntries []domain.TimeEntry) {
	history := report.UserHistory(allEntries, user, team)
	if len(history.UserWeekly) == 0 {
		return
	}

	png, err := charts.UserTrendChart(user, history.UserWeekly, history.TeamAvgWeekly, history.AllTeamsAvgWeekly)
	if err != nil {
		d.gen.Logger.Warn().Err(err).Str("user", user).Msg("trend chart failed")
		png = nil
	}

	d.pdf.SetFont("Helvetica", "B", 11)
	d.pdf.CellFormat(0, 8, fmt.Sprintf("%s - Weekly Hours Trend", user), "", 1, "L", false, 0, "")
	d.embedPNG(png, 150, fmt.Sprintf("%s trend chart", user))
}

func (d *document) addTeamCharts(r domain.WeeklyReport) {
	categoryPNG, err := charts.PieChart(r.TeamCategories,
		fmt.Sprintf("Team %s - Total Time by Category", r.Team), charts.KindCategory, d.gen.Registry)
	if err != nil {
		d.gen.Logger.Warn().Err(err).Str("team", r.Team).Msg("team category chart failed")
		categoryPNG = nil
	}
	d.embedPNG(categoryPNG, 85, fmt.Sprintf("team %s category chart", r.Team))

	activityPNG, err := charts.PieChart(r.TeamActivities,
		fmt.Sprintf("Team %s - Total Time by Activity", r.Team), charts.KindActivity, d.gen.Registry)
	if err != nil {
		d.gen.Logger.Warn().Err(err).Str("team", r.Team).Msg("team activity chart failed")
		activityPNG = nil
	}
	d.embedPNG(activityPNG, 85, fmt.Sprintf("team %s activity chart", r.Team))
}

func (d *document) addTeamComparisonChart(team string, allEntries []domain.TimeEntry) {
	totals := report.AllTeamsHistory(allEntries)
	if len(totals) == 0 {
		return
	}

	png, err := charts.TeamComparisonChart(team, totals)
	if err != nil {
		d.gen.Logger.Warn().Err(err).Str("team", team).Msg("team comparison chart failed")
		png = nil
	}

	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.CellFormat(0, 8, "Team Performance Comparison", "", 1, "L", false, 0, "")
	d.embedPNG(png, 160, "team comparison chart")
}

// isMostRecentWeek reports whether the report covers the latest week seen
// anywhere in the batch, which gates the historical charts.
func isMostRecentWeek(r domain.WeeklyReport, allEntries []domain.TimeEntry) bool {
	if len(allEntries) == 0 {
		return true
	}
	var latest time.Time
	for _, e := range allEntries {
		if w := e.WeekStart(); w.After(latest) {
			latest = w
		}
	}
	return r.WeekStart.Equal(latest)
}
