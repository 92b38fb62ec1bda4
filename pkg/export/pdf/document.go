package pdf

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/edu-tools/mentor-dashboard/pkg/charts"
	"github.com/edu-tools/mentor-dashboard/pkg/models/domain"
	"github.com/edu-tools/mentor-dashboard/pkg/services/report"
	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Generator assembles the paginated dashboard document. The color registry
// is created per run and threaded into every chart call so label colors stay
// stable across the whole document.
type Generator struct {
	ExpectedHours float64
	Registry      *charts.ColorRegistry
	Logger        zerolog.Logger
}

type document struct {
	pdf        *fpdf.Fpdf
	gen        *Generator
	imageCount int
}

func statusColor(tier domain.StatusTier) (r, g, b int) {
	switch tier {
	case domain.TierOnTarget:
		return 0, 102, 0
	case domain.TierOffTarget:
		return 255, 136, 0
	case domain.TierSignificantlyOff:
		return 204, 0, 0
	default:
		return 0, 0, 0
	}
}

// Generate writes one combined PDF covering every team.
func (g *Generator) Generate(entries []domain.TimeEntry, outputPath string) error {
	reports := report.BuildReports(entries)

	doc := g.newDocument()
	doc.addTitlePage(entries)

	for _, r := range reports {
		doc.addWeeklyReport(r, entries)
	}

	if err := doc.pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to write PDF %s: %w", outputPath, err)
	}
	return nil
}

// GenerateSplitByTeam writes one PDF per team next to the base output path
// and returns team → file path.
func (g *Generator) GenerateSplitByTeam(entries []domain.TimeEntry, outputPath string) (map[string]string, error) {
	reports := report.BuildReports(entries)

	byTeam := make(map[string][]domain.WeeklyReport)
	for _, r := range reports {
		byTeam[r.Team] = append(byTeam[r.Team], r)
	}

	ext := filepath.Ext(outputPath)
	base := strings.TrimSuffix(outputPath, ext)

	outputs := make(map[string]string, len(byTeam))
	for team, teamReports := range byTeam {
		safe := strings.NewReplacer(" ", "_", "/", "_").Replace(team)
		path := fmt.Sprintf("%s_%s%s", base, safe, ext)

		teamEntries := lo.Filter(entries, func(e domain.TimeEntry, _ int) bool {
			return e.Group == team
		})

		doc := g.newDocument()
		doc.addTeamTitlePage(teamEntries, team)
		for _, r := range teamReports {
			doc.addWeeklyReport(r, entries)
		}

		if err := doc.pdf.OutputFileAndClose(path); err != nil {
			return nil, fmt.Errorf("failed to write PDF for team %s: %w", team, err)
		}
		outputs[team] = path
	}

	return outputs, nil
}

func (g *Generator) newDocument() *document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 15)
	return &document{pdf: pdf, gen: g}
}

func (d *document) addTitlePage(entries []domain.TimeEntry) {
	d.pdf.AddPage()

	dates := lo.Map(entries, func(e domain.TimeEntry, _ int) time.Time { return e.StartDate })
	teams := lo.Uniq(lo.Map(entries, func(e domain.TimeEntry, _ int) string { return e.Group }))
	sort.Strings(teams)
	users := lo.Uniq(lo.Map(entries, func(e domain.TimeEntry, _ int) string { return e.User }))
	totalHours := lo.SumBy(entries, func(e domain.TimeEntry) float64 { return e.DurationHours })

	d.pdf.SetFont("Helvetica", "B", 24)
	d.pdf.SetTextColor(31, 119, 180)
	d.pdf.CellFormat(0, 14, "Mentor Dashboard Report", "", 1, "C", false, 0, "")
	d.pdf.Ln(8)

	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.SetFont("Helvetica", "B", 13)
	if len(dates) > 0 {
		start := lo.MinBy(dates, func(a, b time.Time) bool { return a.Before(b) })
		end := lo.MaxBy(dates, func(a, b time.Time) bool { return a.After(b) })
		d.pdf.CellFormat(0, 8, fmt.Sprintf("Report Period: %s - %s",
			start.Format("January 02, 2006"), end.Format("January 02, 2006")), "", 1, "L", false, 0, "")
	}
	d.pdf.CellFormat(0, 8, "Teams: "+strings.Join(teams, ", "), "", 1, "L", false, 0, "")
	d.pdf.Ln(6)

	d.keyValueTable([][2]string{
		{"Total Hours Logged", fmt.Sprintf("%.1f hours", totalHours)},
		{"Number of Participants", fmt.Sprintf("%d", len(users))},
		{"Number of Teams", fmt.Sprintf("%d", len(teams))},
		{"Generated", time.Now().Format("January 02, 2006 at 3:04 PM")},
	})
}

func (d *document) addTeamTitlePage(teamEntries []domain.TimeEntry, team string) {
	d.pdf.AddPage()

	dates := lo.Map(teamEntries, func(e domain.TimeEntry, _ int) time.Time { return e.StartDate })
	members := lo.Uniq(lo.Map(teamEntries, func(e domain.TimeEntry, _ int) string { return e.User }))
	sort.Strings(members)
	totalHours := lo.SumBy(teamEntries, func(e domain.TimeEntry) float64 { return e.DurationHours })
	weeks := lo.Uniq(lo.Map(teamEntries, func(e domain.TimeEntry, _ int) time.Time { return e.WeekStart() }))

	d.pdf.SetFont("Helvetica", "B", 24)
	d.pdf.SetTextColor(31, 119, 180)
	d.pdf.CellFormat(0, 14, fmt.Sprintf("Team %s - Weekly Report", team), "", 1, "C", false, 0, "")
	d.pdf.Ln(8)

	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.SetFont("Helvetica", "B", 13)
	if len(dates) > 0 {
		start := lo.MinBy(dates, func(a, b time.Time) bool { return a.Before(b) })
		end := lo.MaxBy(dates, func(a, b time.Time) bool { return a.After(b) })
		d.pdf.CellFormat(0, 8, fmt.Sprintf("Report Period: %s - %s",
			start.Format("January 02, 2006"), end.Format("January 02, 2006")), "", 1, "L", false, 0, "")
	}
	d.pdf.CellFormat(0, 8, "Team Members: "+strings.Join(members, ", "), "", 1, "L", false, 0, "")
	d.pdf.Ln(6)

	avgPerWeek := "N/A"
	if len(weeks) > 0 {
		avgPerWeek = fmt.Sprintf("%.1f hours", totalHours/float64(len(weeks)))
	}
	d.keyValueTable([][2]string{
		{"Total Hours Logged", fmt.Sprintf("%.1f hours", totalHours)},
		{"Team Members", fmt.Sprintf("%d", len(members))},
		{"Weeks Covered", fmt.Sprintf("%d", len(weeks))},
		{"Average Hours per Week", avgPerWeek},
		{"Generated", time.Now().Format("January 02, 2006 at 3:04 PM")},
	})
}

func (d *document) keyValueTable(rows [][2]string) {
	d.pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		d.pdf.SetFont("Helvetica", "B", 11)
		d.pdf.CellFormat(60, 9, row[0], "1", 0, "L", false, 0, "")
		d.pdf.SetFont("Helvetica", "", 11)
		d.pdf.CellFormat(80, 9, row[1], "1", 1, "L", false, 0, "")
	}
}

// embedPNG registers raw PNG bytes under a unique name and draws them at the
// current position. Render failures degrade to a textual placeholder rather
// than aborting the document.
func (d *document) embedPNG(png []byte, widthMM float64, caption string) {
	if len(png) == 0 {
		d.placeholderText(caption)
		return
	}

	d.imageCount++
	name := fmt.Sprintf("chart-%d", d.imageCount)
	d.pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	if d.pdf.Err() {
		d.gen.Logger.Warn().Str("chart", caption).Msg("could not embed chart image")
		d.pdf.ClearError()
		d.placeholderText(caption)
		return
	}
	d.pdf.ImageOptions(name, -1, -1, widthMM, 0, true, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	d.pdf.Ln(4)
}

func (d *document) placeholderText(caption string) {
	d.pdf.SetFont("Helvetica", "I", 10)
	d.pdf.SetTextColor(128, 128, 128)
	d.pdf.CellFormat(0, 8, fmt.Sprintf("[%s could not be generated]", caption), "", 1, "L", false, 0, "")
	d.pdf.SetTextColor(0, 0, 0)
}
