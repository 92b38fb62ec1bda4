package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/edu-tools/mentor-dashboard/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWebAPI_Routes(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	week1 := time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)

	api := NewWebAPI(logger, Config{
		Addr: ":0",
		Entries: []domain.TimeEntry{
			{User: "Alice", Group: "TeamA", StartDate: week1, DurationHours: 5, Activity: "Coding", Category: "Dev"},
		},
	})

	cases := []struct {
		path string
		want int
	}{
		{"/api/v1/teams", http.StatusOK},
		{"/api/v1/teams/TeamA/reports", http.StatusOK},
		{"/api/v1/teams/TeamA/history", http.StatusOK},
		{"/api/v1/teams/Missing/reports", http.StatusNotFound},
		{"/api/v1/users/Alice/history?team=TeamA", http.StatusOK},
		{"/api/v1/users/Alice/history", http.StatusBadRequest},
		{"/nope", http.StatusNotFound},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		api.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		assert.Equal(t, tc.want, rec.Code, "path %s", tc.path)
	}
}
