package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/edu-tools/mentor-dashboard/pkg/models/api"
	"github.com/edu-tools/mentor-dashboard/pkg/models/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() *chi.Mux {
	week1 := time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)
	week2 := time.Date(2026, 1, 19, 9, 0, 0, 0, time.UTC)
	entries := []domain.TimeEntry{
		{User: "Alice", Group: "TeamA", StartDate: week1, DurationHours: 5, Activity: "Coding", Category: "Dev"},
		{User: "Bob", Group: "TeamA", StartDate: week1, DurationHours: 4, Activity: "Coding", Category: "Dev"},
		{User: "Alice", Group: "TeamA", StartDate: week2, DurationHours: 6, Activity: "Testing", Category: "QA"},
		{User: "Dave", Group: "TeamB", StartDate: week1, DurationHours: 3, Activity: "Writing", Category: "Docs"},
	}

	h := NewHandler(entries)
	router := chi.NewRouter()
	router.Get("/teams", h.ListTeams)
	router.Get("/teams/{team}/reports", h.GetTeamReports)
	router.Get("/teams/{team}/history", h.GetTeamHistory)
	router.Get("/users/{user}/history", h.GetUserHistory)
	return router
}

func TestListTeams(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var teams []api.Team
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &teams))
	assert.Equal(t, []api.Team{{Name: "TeamA"}, {Name: "TeamB"}}, teams)
}

func TestGetTeamReports(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams/TeamA/reports", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var reports []api.WeeklyReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reports))
	require.Len(t, reports, 2)
	// Most recent week first.
	assert.True(t, reports[0].WeekStart.After(reports[1].WeekStart))
	assert.Equal(t, "new", reports[0].ActivityTrends["Testing"])
	assert.Equal(t, "down", reports[0].ActivityTrends["Coding"])
}

func TestGetTeamReports_UnknownTeam(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams/Nope/reports", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTeamHistory(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams/TeamA/history", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var history api.TeamHistory
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history.Weekly, 2)
	assert.InDelta(t, 9.0, history.Weekly[0].Hours, 1e-9)
	assert.InDelta(t, 6.0, history.Weekly[1].Hours, 1e-9)
}

func TestGetUserHistory(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/Alice/history?team=TeamA", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var history api.UserHistory
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	assert.Equal(t, "Alice", history.User)
	require.Len(t, history.UserWeekly, 2)
	assert.InDelta(t, 5.0, history.UserWeekly[0].Hours, 1e-9)
	// Team average excludes Alice: week1 only Bob logged.
	require.Len(t, history.TeamAvgWeekly, 1)
	assert.InDelta(t, 4.0, history.TeamAvgWeekly[0].Hours, 1e-9)
	assert.Equal(t, "up", history.Trend)
}

func TestGetUserHistory_MissingTeamParam(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/Alice/history", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
