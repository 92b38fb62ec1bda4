package charts

import (
	"bytes"
	"fmt"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	pieWidth  = 640
	pieHeight = 480
)

// PieChart renders a proportion chart over label→hours data as PNG bytes.
// Slices are ordered by value descending and colored through the registry so
// the same label keeps its color across every chart of the run. Empty data
// yields a "No data available" placeholder image.
func PieChart(data map[string]float64, title string, kind Kind, reg *ColorRegistry) ([]byte, error) {
	if len(data) == 0 {
		return placeholderImage(title)
	}

	type slice struct {
		label string
		value float64
	}
	slices := make([]slice, 0, len(data))
	for label, value := range data {
		slices = append(slices, slice{label, value})
	}
	sort.Slice(slices, func(i, j int) bool {
		if slices[i].value != slices[j].value {
			return slices[i].value > slices[j].value
		}
		return slices[i].label < slices[j].label
	})

	values := make([]chart.Value, 0, len(slices))
	for _, s := range slices {
		color := drawing.ColorFromHex(reg.ColorFor(s.label, kind))
		values = append(values, chart.Value{
			Value: s.value,
			Label: fmt.Sprintf("%s: %.1fh", s.label, s.value),
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color.WithAlpha(220),
				FontColor:   drawing.ColorWhite,
			},
		})
	}

	graph := chart.PieChart{
		Title:  title,
		Width:  pieWidth,
		Height: pieHeight,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render pie chart %q: %w", title, err)
	}
	return buf.Bytes(), nil
}

func placeholderImage(title string) ([]byte, error) {
	graph := chart.PieChart{
		Title:  title,
		Width:  pieWidth,
		Height: pieHeight,
		Values: []chart.Value{{
			Value: 1,
			Label: "No data available",
			Style: chart.Style{FillColor: drawing.ColorFromHex("d9d9d9")},
		}},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render placeholder chart %q: %w", title, err)
	}
	return buf.Bytes(), nil
}
