package report

import (
	"github.com/edu-tools/mentor-dashboard/pkg/models/domain"
	"github.com/samber/lo"
)

const (
	// Dead band for week-over-week activity/category comparisons.
	categoricalDeadBandPct = 5.0
	// Dead band for multi-week rolling user trends.
	rollingDeadBandPct = 10.0
	// Rolling trends look at the last up-to-four weeks.
	rollingWindow = 4
)

// TrendIndicator classifies a single-step change between two values.
// A change within the ±5% dead band is flat; growth out of zero is new.
func TrendIndicator(current, previous float64, isNew bool) domain.Trend {
	if isNew {
		return domain.TrendNew
	}
	return stepTrend(current, previous, categoricalDeadBandPct)
}

func stepTrend(current, previous, deadBandPct float64) domain.Trend {
	if previous == 0 {
		if current > 0 {
			return domain.TrendNew
		}
		return domain.TrendFlat
	}

	pct := (current - previous) / previous * 100
	switch {
	case pct > deadBandPct:
		return domain.TrendUp
	case pct < -deadBandPct:
		return domain.TrendDown
	default:
		return domain.TrendFlat
	}
}

// RollingTrend classifies the direction of a user's weekly hours over the
// last min(4, n) points of a chronologically ordered series. With exactly
// two points the comparison is point-to-point; with more, the window is
// split at its floor midpoint and the halves' averages are compared. The
// dead band here is ±10%, wider than the categorical one.
func RollingTrend(weeklyHours []float64) domain.Trend {
	if len(weeklyHours) < 2 {
		return domain.TrendNew
	}

	recent := weeklyHours[len(weeklyHours)-min(rollingWindow, len(weeklyHours)):]

	if len(recent) == 2 {
		return stepTrend(recent[1], recent[0], rollingDeadBandPct)
	}

	mid := len(recent) / 2
	firstAvg := lo.Sum(recent[:mid]) / float64(mid)
	secondAvg := lo.Sum(recent[mid:]) / float64(len(recent)-mid)
	return stepTrend(secondAvg, firstAvg, rollingDeadBandPct)
}

// CalculateTrends computes indicators for every label in the union of the
// current and previous week's keys. A label that vanished this week still
// gets an entry (a -100% drop reads as down), and a label absent last week
// reads as new.
func CalculateTrends(current, previous map[string]float64) map[string]domain.Trend {
	trends := make(map[string]domain.Trend, len(current))

	labels := lo.Uniq(append(lo.Keys(current), lo.Keys(previous)...))
	for _, label := range labels {
		_, existed := previous[label]
		trends[label] = TrendIndicator(current[label], previous[label], !existed)
	}

	return trends
}
