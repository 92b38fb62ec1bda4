package domain

import "time"

// Trend describes the change of a value against a comparison baseline.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
	TrendNew  Trend = "new"
)

// Symbol returns the indicator glyph used in terminal output and legends.
func (t Trend) Symbol() string {
	switch t {
	case TrendUp:
		return "↑"
	case TrendDown:
		return "↓"
	case TrendNew:
		return "★"
	default:
		return "→"
	}
}

// Label returns the indicator as a plain word for surfaces that cannot
// render the glyphs.
func (t Trend) Label() string {
	switch t {
	case TrendUp:
		return "Up"
	case TrendDown:
		return "Down"
	case TrendNew:
		return "New"
	default:
		return "Flat"
	}
}

// StatusTier is the visual tier backing the hours-status labels. Five
// textual labels collapse into three tiers plus the neutral no-expectation
// case.
type StatusTier int

const (
	TierNeutral StatusTier = iota
	TierOnTarget
	TierOffTarget
	TierSignificantlyOff
)

// HoursStatus is the classification of a participant's actual hours against
// the expected weekly target.
type HoursStatus struct {
	Tier  StatusTier
	Label string
}

// WeeklyReport is the per-team, per-week report unit. Activity and category
// trends are computed against the team's own previous week with data in
// chronological order, regardless of the reverse-chronological display order.
type WeeklyReport struct {
	Team                string
	WeekStart           time.Time
	WeekEnd             time.Time
	TotalHours          float64
	NumParticipants     int
	AvgHoursPerPerson   float64
	IndividualSummaries map[string]WeekSummary
	TeamActivities      map[string]float64
	TeamCategories      map[string]float64
	ActivityTrends      map[string]Trend
	CategoryTrends      map[string]Trend
}

// UserHistory holds the three weekly series backing an individual trend
// chart. The key sets are independent: a week a user logged nothing is
// absent, not zero.
type UserHistory struct {
	UserWeekly        map[time.Time]float64
	TeamAvgWeekly     map[time.Time]float64
	AllTeamsAvgWeekly map[time.Time]float64
}
