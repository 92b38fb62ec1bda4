package report

import (
	"testing"

	"github.com/edu-tools/mentor-dashboard/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestTrendIndicator(t *testing.T) {
	cases := []struct {
		name     string
		current  float64
		previous float64
		isNew    bool
		want     domain.Trend
	}{
		{"new label", 10, 0, true, domain.TrendNew},
		{"growth out of zero", 5, 0, false, domain.TrendNew},
		{"zero to zero", 0, 0, false, domain.TrendFlat},
		{"unchanged", 100, 100, false, domain.TrendFlat},
		{"above dead band", 106, 100, false, domain.TrendUp},
		{"below dead band", 94, 100, false, domain.TrendDown},
		{"exactly plus five percent", 105, 100, false, domain.TrendFlat},
		{"exactly minus five percent", 95, 100, false, domain.TrendFlat},
		{"dropped to zero", 0, 10, false, domain.TrendDown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TrendIndicator(tc.current, tc.previous, tc.isNew))
		})
	}
}

func TestRollingTrend(t *testing.T) {
	cases := []struct {
		name   string
		series []float64
		want   domain.Trend
	}{
		{"empty", nil, domain.TrendNew},
		{"single point", []float64{5}, domain.TrendNew},
		{"two flat points", []float64{10, 10}, domain.TrendFlat},
		{"two rising points", []float64{10, 20}, domain.TrendUp},
		{"two falling points", []float64{20, 10}, domain.TrendDown},
		{"two points within ten percent", []float64{10, 10.9}, domain.TrendFlat},
		{"rise out of zero", []float64{0, 5}, domain.TrendNew},
		{"balanced halves", []float64{10, 5, 10, 5}, domain.TrendFlat},
		{"rising halves", []float64{5, 5, 10, 10}, domain.TrendUp},
		{"falling halves", []float64{10, 10, 5, 5}, domain.TrendDown},
		{"window caps at four", []float64{100, 100, 10, 10, 20, 20}, domain.TrendUp},
		{"three points uses floor midpoint", []float64{10, 20, 20}, domain.TrendUp},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RollingTrend(tc.series))
		})
	}
}

func TestCalculateTrends_UnionOfKeys(t *testing.T) {
	current := map[string]float64{"Testing": 10}
	previous := map[string]float64{"Coding": 10}

	trends := CalculateTrends(current, previous)

	// Both the vanished and the appeared label show up.
	assert.Len(t, trends, 2)
	assert.Equal(t, domain.TrendNew, trends["Testing"])
	assert.Equal(t, domain.TrendDown, trends["Coding"])
}

func TestCalculateTrends_FirstWeekIsAllNew(t *testing.T) {
	trends := CalculateTrends(map[string]float64{"Coding": 3, "Testing": 2}, map[string]float64{})

	assert.Equal(t, domain.TrendNew, trends["Coding"])
	assert.Equal(t, domain.TrendNew, trends["Testing"])
}
