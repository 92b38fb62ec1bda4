package charts

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	lineWidth  = 900
	lineHeight = 540
)

// UserTrendChart renders a user's weekly hours against their team average
// (excluding them) and the all-teams average. The x axis follows the user's
// own weeks sorted chronologically; comparison series fill weeks they have
// no value for with zero.
func UserTrendChart(user string, userWeekly, teamAvg, allTeamsAvg map[time.Time]float64) ([]byte, error) {
	if len(userWeekly) == 0 {
		return placeholderImage(fmt.Sprintf("%s - Weekly Hours Trend", user))
	}

	weeks := sortedKeys(userWeekly)

	userSeries := make([]float64, len(weeks))
	teamSeries := make([]float64, len(weeks))
	globalSeries := make([]float64, len(weeks))
	for i, w := range weeks {
		userSeries[i] = userWeekly[w]
		teamSeries[i] = teamAvg[w]
		globalSeries[i] = allTeamsAvg[w]
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s - Weekly Hours Trend", user),
		Width:  lineWidth,
		Height: lineHeight,
		XAxis: chart.XAxis{
			Name:           "Week Starting",
			ValueFormatter: weekLabelFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Hours",
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    user,
				XValues: weeks,
				YValues: userSeries,
				Style: chart.Style{
					StrokeColor: drawing.ColorFromHex("1f77b4"),
					StrokeWidth: 3,
					DotWidth:    4,
					DotColor:    drawing.ColorFromHex("1f77b4"),
				},
			},
			chart.TimeSeries{
				Name:    "Team Average",
				XValues: weeks,
				YValues: teamSeries,
				Style: chart.Style{
					StrokeColor:     drawing.ColorFromHex("ff7f0e"),
					StrokeWidth:     2,
					StrokeDashArray: []float64{5, 5},
				},
			},
			chart.TimeSeries{
				Name:    "All Teams Average",
				XValues: weeks,
				YValues: globalSeries,
				Style: chart.Style{
					StrokeColor:     drawing.ColorFromHex("2ca02c"),
					StrokeWidth:     2,
					StrokeDashArray: []float64{2, 4},
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render trend chart for %s: %w", user, err)
	}
	return buf.Bytes(), nil
}

// TeamComparisonChart renders one weekly-total line per team over the union
// of every team's weeks, with the current team drawn heavier.
func TeamComparisonChart(currentTeam string, allTeams map[string]map[time.Time]float64) ([]byte, error) {
	if len(allTeams) == 0 {
		return placeholderImage("Team Comparison - Weekly Hours")
	}

	weekSet := make(map[time.Time]struct{})
	for _, weekly := range allTeams {
		for w := range weekly {
			weekSet[w] = struct{}{}
		}
	}
	weeks := make([]time.Time, 0, len(weekSet))
	for w := range weekSet {
		weeks = append(weeks, w)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })

	teams := make([]string, 0, len(allTeams))
	for team := range allTeams {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	series := make([]chart.Series, 0, len(teams))
	for i, team := range teams {
		values := make([]float64, len(weeks))
		for j, w := range weeks {
			values[j] = allTeams[team][w]
		}

		color := drawing.ColorFromHex(basePalette[i%len(basePalette)])
		style := chart.Style{StrokeColor: color, StrokeWidth: 2}
		name := team
		if team == currentTeam {
			style.StrokeWidth = 4
			style.DotWidth = 5
			style.DotColor = color
			name = fmt.Sprintf("%s (Current)", team)
		}

		series = append(series, chart.TimeSeries{
			Name:    name,
			XValues: weeks,
			YValues: values,
			Style:   style,
		})
	}

	graph := chart.Chart{
		Title:  "Team Comparison - Weekly Total Hours",
		Width:  lineWidth,
		Height: lineHeight,
		XAxis: chart.XAxis{
			Name:           "Week Starting",
			ValueFormatter: weekLabelFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Total Team Hours",
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render team comparison chart: %w", err)
	}
	return buf.Bytes(), nil
}

func weekLabelFormatter(v interface{}) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format("01/02")
	case float64:
		return time.Unix(0, int64(t)).Format("01/02")
	default:
		return ""
	}
}

func sortedKeys(m map[time.Time]float64) []time.Time {
	keys := make([]time.Time, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })
	return keys
}
