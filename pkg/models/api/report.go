package api

import "time"

type WeekSummary struct {
	TotalHours        float64            `json:"total_hours"`
	NumParticipants   int                `json:"num_participants"`
	AvgHoursPerPerson float64            `json:"avg_hours_per_person"`
	Activities        map[string]float64 `json:"activities"`
	Categories        map[string]float64 `json:"categories"`
	Users             map[string]float64 `json:"users"`
}

type WeeklyReport struct {
	Team                string                 `json:"team"`
	WeekStart           time.Time              `json:"week_start"`
	WeekEnd             time.Time              `json:"week_end"`
	TotalHours          float64                `json:"total_hours"`
	NumParticipants     int                    `json:"num_participants"`
	AvgHoursPerPerson   float64                `json:"avg_hours_per_person"`
	IndividualSummaries map[string]WeekSummary `json:"individual_summaries"`
	TeamActivities      map[string]float64     `json:"team_activities"`
	TeamCategories      map[string]float64     `json:"team_categories"`
	ActivityTrends      map[string]string      `json:"activity_trends"`
	CategoryTrends      map[string]string      `json:"category_trends"`
}

type Team struct {
	Name string `json:"name"`
}

type WeeklyPoint struct {
	WeekStart time.Time `json:"week_start"`
	Hours     float64   `json:"hours"`
}

type TeamHistory struct {
	Team   string        `json:"team"`
	Weekly []WeeklyPoint `json:"weekly"`
}

type UserHistory struct {
	User              string        `json:"user"`
	Team              string        `json:"team"`
	UserWeekly        []WeeklyPoint `json:"user_weekly"`
	TeamAvgWeekly     []WeeklyPoint `json:"team_avg_weekly"`
	AllTeamsAvgWeekly []WeeklyPoint `json:"all_teams_avg_weekly"`
	Trend             string        `json:"trend"`
}
