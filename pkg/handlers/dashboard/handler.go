package dashboard

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/edu-tools/mentor-dashboard/pkg/adapters"
	"github.com/edu-tools/mentor-dashboard/pkg/models/api"
	"github.com/edu-tools/mentor-dashboard/pkg/models/domain"
	"github.com/edu-tools/mentor-dashboard/pkg/services/report"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler serves a read-only JSON view over one parsed batch of entries.
// Reports are assembled once at construction; the batch never changes while
// the server runs.
type Handler struct {
	entries []domain.TimeEntry
	reports []domain.WeeklyReport
}

func NewHandler(entries []domain.TimeEntry) *Handler {
	return &Handler{
		entries: entries,
		reports: report.BuildReports(entries),
	}
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	seen := make(map[string]struct{})
	var teams []api.Team
	for _, rep := range h.reports {
		if _, ok := seen[rep.Team]; ok {
			continue
		}
		seen[rep.Team] = struct{}{}
		teams = append(teams, api.Team{Name: rep.Team})
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })

	writeJSON(w, logger, teams)
}

func (h *Handler) GetTeamReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	team := chi.URLParam(r, "team")

	var response []api.WeeklyReport
	for _, rep := range h.reports {
		if rep.Team == team {
			response = append(response, adapters.MapWeeklyReportDomainToApi(rep))
		}
	}
	if len(response) == 0 {
		http.Error(w, "unknown team", http.StatusNotFound)
		return
	}

	writeJSON(w, logger, response)
}

func (h *Handler) GetTeamHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	team := chi.URLParam(r, "team")

	totals := report.AllTeamsHistory(h.entries)
	weekly, ok := totals[team]
	if !ok {
		http.Error(w, "unknown team", http.StatusNotFound)
		return
	}

	writeJSON(w, logger, api.TeamHistory{
		Team:   team,
		Weekly: adapters.MapWeeklySeriesDomainToApi(weekly),
	})
}

func (h *Handler) GetUserHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	user := chi.URLParam(r, "user")
	team := r.URL.Query().Get("team")
	if team == "" {
		http.Error(w, "missing team query parameter", http.StatusBadRequest)
		return
	}

	history := report.UserHistory(h.entries, user, team)
	if len(history.UserWeekly) == 0 {
		http.Error(w, "no data for user", http.StatusNotFound)
		return
	}
	trend := report.RollingTrend(report.UserWeeklySeries(history))

	writeJSON(w, logger, adapters.MapUserHistoryDomainToApi(user, team, history, trend))
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
