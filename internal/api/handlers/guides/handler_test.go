package guides

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	guidesService "github.com/m04kA/TourOps-BookingService/internal/service/guides"
	"github.com/m04kA/TourOps-BookingService/internal/testutil/fakes"
	"github.com/m04kA/TourOps-BookingService/pkg/ptr"
)

type fixture struct {
	h     *Handler
	anna  domain.Guide
	boris domain.Guide
}

func newFixture() *fixture {
	db := fakes.NewDB()
	anna := db.AddGuide(domain.Guide{Name: "Anna", MaxPartySize: ptr.Ptr(12), IsActive: true})
	boris := db.AddGuide(domain.Guide{Name: "Boris", MaxPartySize: ptr.Ptr(20), IsActive: true})

	start := time.Date(2026, 8, 14, 9, 0, 0, 0, time.UTC)
	schedule := db.AddSchedule(domain.Schedule{
		ActivityID:     1,
		ScheduledStart: start,
		ScheduledEnd:   start.Add(4 * time.Hour),
		Capacity:       20,
		IsActive:       true,
	})
	db.AddAssignments(schedule.ID, domain.Assignment{GuideID: boris.ID, IsLeader: true})

	svc := guidesService.NewService(fakes.NewGuideRepo(db), &fakes.TxManager{}, time.UTC, fakes.Logger{})
	return &fixture{h: NewHandler(svc, fakes.Logger{}), anna: anna, boris: boris}
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) (string, string) {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error, body.Message
}

func TestAvailability(t *testing.T) {
	f := newFixture()
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/guides/availability/2026-08-14", nil),
		map[string]string{"date": "2026-08-14"})
	rec := httptest.NewRecorder()

	f.h.Availability(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []struct {
		GuideID            int64 `json:"guideId"`
		IsAvailable        bool  `json:"isAvailable"`
		CurrentAssignments int   `json:"currentAssignments"`
		LeadingAssignments int   `json:"leadingAssignments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, f.anna.ID, resp[0].GuideID)
	assert.True(t, resp[0].IsAvailable)
	assert.Equal(t, f.boris.ID, resp[1].GuideID)
	assert.False(t, resp[1].IsAvailable)
	assert.Equal(t, 1, resp[1].CurrentAssignments)
	assert.Equal(t, 1, resp[1].LeadingAssignments)
}

func TestAvailability_InvalidDate(t *testing.T) {
	f := newFixture()
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/guides/availability/14-08-2026", nil),
		map[string]string{"date": "14-08-2026"})
	rec := httptest.NewRecorder()

	f.h.Availability(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	kind, msg := errorBody(t, rec)
	assert.Equal(t, "validation_error", kind)
	assert.Equal(t, msgInvalidDate, msg)
}

func TestAvailableLeaders(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		status  int
		ids     func(f *fixture) []int64
		message string
	}{
		{
			name:   "busy guide skipped",
			query:  "date=2026-08-14&partySize=10",
			status: http.StatusOK,
			ids:    func(f *fixture) []int64 { return []int64{f.anna.ID} },
		},
		{
			name:   "party too large for free guide",
			query:  "date=2026-08-14&partySize=15",
			status: http.StatusOK,
			ids:    func(*fixture) []int64 { return []int64{} },
		},
		{
			name:   "other day",
			query:  "date=2026-08-15&partySize=10",
			status: http.StatusOK,
			ids:    func(f *fixture) []int64 { return []int64{f.boris.ID, f.anna.ID} },
		},
		{name: "missing party size", query: "date=2026-08-14", status: http.StatusBadRequest, message: msgInvalidPartySize},
		{name: "zero party size", query: "date=2026-08-14&partySize=0", status: http.StatusBadRequest, message: msgInvalidPartySize},
		{name: "bad date", query: "date=tomorrow&partySize=4", status: http.StatusBadRequest, message: msgInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			rec := httptest.NewRecorder()

			f.h.AvailableLeaders(rec, httptest.NewRequest(http.MethodGet, "/api/v1/guides/available-leaders?"+tt.query, nil))

			require.Equal(t, tt.status, rec.Code)
			if tt.status != http.StatusOK {
				kind, msg := errorBody(t, rec)
				assert.Equal(t, "validation_error", kind)
				assert.Equal(t, tt.message, msg)
				return
			}

			var resp []struct {
				ID int64 `json:"id"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			ids := make([]int64, 0, len(resp))
			for _, g := range resp {
				ids = append(ids, g.ID)
			}
			assert.Equal(t, tt.ids(f), ids)
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	f := newFixture()
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/guides/404", nil), map[string]string{"guideId": "404"})
	rec := httptest.NewRecorder()

	f.h.Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	kind, _ := errorBody(t, rec)
	assert.Equal(t, "not_found", kind)
}
