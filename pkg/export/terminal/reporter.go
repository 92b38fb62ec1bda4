package terminal

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/template"

	"github.com/edu-tools/mentor-dashboard/pkg/models/domain"
	"github.com/edu-tools/mentor-dashboard/pkg/services/report"
)

// Reporter renders weekly reports as plain text tables for terminal use.
type Reporter struct {
	writer        io.Writer
	expectedHours float64
}

func NewReporter(writer io.Writer, expectedHours float64) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer, expectedHours: expectedHours}
}

type reportView struct {
	Team      string
	WeekRange string
	Summary   domain.WeeklyReport
	Students  []studentView
	Trends    []trendRow
}

type studentView struct {
	Name   string
	Hours  float64
	Status string
	Trend  string
}

type trendRow struct {
	Label string
	Hours float64
	Trend string
}

func (r *Reporter) Handle(reports []domain.WeeklyReport, allEntries []domain.TimeEntry) error {
	views := make([]reportView, 0, len(reports))
	for _, rep := range reports {
		views = append(views, r.buildView(rep, allEntries))
	}

	tmpl := `{{range .}}
=== Team {{.Team}} | Week of {{.WeekRange}} ===
Total: {{printf "%.1f" .Summary.TotalHours}}h | Participants: {{.Summary.NumParticipants}} | Avg/person: {{printf "%.1f" .Summary.AvgHoursPerPerson}}h
{{if .Trends}}
Category trends:
{{range .Trends}}  {{printf "%-30s %6.1fh  %s" .Label .Hours .Trend}}
{{end}}{{end}}{{if .Students}}
Students:
{{range .Students}}  {{printf "%-24s %6.1fh  %-36s %s" .Name .Hours .Status .Trend}}
{{end}}{{end}}{{end}}`

	t, err := template.New("reports").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	return t.Execute(r.writer, views)
}

func (r *Reporter) buildView(rep domain.WeeklyReport, allEntries []domain.TimeEntry) reportView {
	view := reportView{
		Team:      rep.Team,
		WeekRange: report.FormatWeekRange(rep.WeekStart),
		Summary:   rep,
	}

	for label, trend := range rep.CategoryTrends {
		view.Trends = append(view.Trends, trendRow{Label: label, Hours: rep.TeamCategories[label], Trend: trend.Symbol()})
	}
	sort.Slice(view.Trends, func(i, j int) bool {
		if view.Trends[i].Hours != view.Trends[j].Hours {
			return view.Trends[i].Hours > view.Trends[j].Hours
		}
		return view.Trends[i].Label < view.Trends[j].Label
	})

	for user, summary := range rep.IndividualSummaries {
		status := report.Classify(summary.TotalHours, r.expectedHours)
		history := report.UserHistory(allEntries, user, rep.Team)
		trend := report.RollingTrend(report.UserWeeklySeries(history))
		view.Students = append(view.Students, studentView{
			Name:   user,
			Hours:  summary.TotalHours,
			Status: status.Label,
			Trend:  trend.Symbol(),
		})
	}
	sort.Slice(view.Students, func(i, j int) bool {
		if view.Students[i].Hours != view.Students[j].Hours {
			return view.Students[i].Hours > view.Students[j].Hours
		}
		return view.Students[i].Name < view.Students[j].Name
	})

	return view
}
