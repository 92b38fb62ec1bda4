package charts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestPieChart_RendersPNG(t *testing.T) {
	reg := NewColorRegistry()

	png, err := PieChart(map[string]float64{"Dev": 5, "QA": 2.5}, "alice - Time by Category", KindCategory, reg)

	require.NoError(t, err)
	assert.Equal(t, pngHeader, png[:4])
}

func TestPieChart_EmptyDataRendersPlaceholder(t *testing.T) {
	png, err := PieChart(nil, "empty", KindCategory, NewColorRegistry())

	require.NoError(t, err)
	assert.Equal(t, pngHeader, png[:4])
}

func TestUserTrendChart_RendersPNG(t *testing.T) {
	week1 := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	week2 := time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC)

	png, err := UserTrendChart("alice",
		map[time.Time]float64{week1: 5, week2: 8},
		map[time.Time]float64{week1: 4},
		map[time.Time]float64{week1: 4.5, week2: 6},
	)

	require.NoError(t, err)
	assert.Equal(t, pngHeader, png[:4])
}

func TestTeamComparisonChart_RendersPNG(t *testing.T) {
	week1 := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	week2 := time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC)

	png, err := TeamComparisonChart("TeamA", map[string]map[time.Time]float64{
		"TeamA": {week1: 10, week2: 12},
		"TeamB": {week1: 8, week2: 9},
	})

	require.NoError(t, err)
	assert.Equal(t, pngHeader, png[:4])
}
