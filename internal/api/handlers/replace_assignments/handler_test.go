package replace_assignments

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/internal/testutil/fakes"
	assignGuides "github.com/m04kA/TourOps-BookingService/internal/usecase/assign_guides"
)

type fixture struct {
	db       *fakes.DB
	h        *Handler
	schedule domain.Schedule
	anna     domain.Guide
	boris    domain.Guide
	retired  domain.Guide
}

func newFixture() *fixture {
	db := fakes.NewDB()
	activity := db.AddActivity(domain.Activity{Title: "Canyon trek", PartySize: 12, IsActive: true})
	start := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	schedule := db.AddSchedule(domain.Schedule{
		ActivityID:     activity.ID,
		ScheduledStart: start,
		ScheduledEnd:   start.Add(3 * time.Hour),
		Capacity:       12,
		IsActive:       true,
	})

	uc := assignGuides.NewUseCase(
		fakes.NewScheduleRepo(db),
		fakes.NewGuideRepo(db),
		&fakes.GuideSelector{},
		&fakes.TxManager{},
		fakes.Logger{},
	)

	return &fixture{
		db:       db,
		h:        NewHandler(uc, fakes.Logger{}),
		schedule: schedule,
		anna:     db.AddGuide(domain.Guide{Name: "Anna", IsActive: true}),
		boris:    db.AddGuide(domain.Guide{Name: "Boris", IsActive: true}),
		retired:  db.AddGuide(domain.Guide{Name: "Viktor", IsActive: false}),
	}
}

func (f *fixture) put(scheduleID int64, body string) *httptest.ResponseRecorder {
	id := fmt.Sprint(scheduleID)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/schedules/"+id+"/guides", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"scheduleId": id})
	rec := httptest.NewRecorder()
	f.h.Handle(rec, req)
	return rec
}

func guidesBody(items ...string) string {
	return `{"guides": [` + strings.Join(items, ",") + `]}`
}

func guide(id int64, leader bool) string {
	return fmt.Sprintf(`{"guideId": %d, "isLeader": %t}`, id, leader)
}

func errorKind(t *testing.T, rec *httptest.ResponseRecorder) string {
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestHandle_ReplacesGuides(t *testing.T) {
	f := newFixture()

	rec := f.put(f.schedule.ID, guidesBody(guide(f.anna.ID, true), guide(f.boris.ID, false)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []struct {
		GuideID  int64 `json:"guideId"`
		IsLeader bool  `json:"isLeader"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, f.anna.ID, resp[0].GuideID)
	assert.True(t, resp[0].IsLeader)
	assert.Len(t, f.db.Assignments(f.schedule.ID), 2)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		id     func(f *fixture) int64
		body   func(f *fixture) string
		status int
		kind   string
	}{
		{
			name:   "two leaders",
			body:   func(f *fixture) string { return guidesBody(guide(f.anna.ID, true), guide(f.boris.ID, true)) },
			status: http.StatusConflict,
			kind:   "leader_conflict",
		},
		{
			name:   "same guide twice",
			body:   func(f *fixture) string { return guidesBody(guide(f.anna.ID, true), guide(f.anna.ID, false)) },
			status: http.StatusConflict,
			kind:   "conflict",
		},
		{
			name:   "inactive guide",
			body:   func(f *fixture) string { return guidesBody(guide(f.retired.ID, true)) },
			status: http.StatusNotFound,
			kind:   "not_found",
		},
		{
			name:   "unknown guide",
			body:   func(f *fixture) string { return guidesBody(guide(999, false)) },
			status: http.StatusNotFound,
			kind:   "not_found",
		},
		{
			name:   "unknown schedule",
			id:     func(*fixture) int64 { return 999 },
			body:   func(f *fixture) string { return guidesBody(guide(f.anna.ID, true)) },
			status: http.StatusNotFound,
			kind:   "not_found",
		},
		{
			name:   "broken body",
			body:   func(*fixture) string { return `{"guides": [` },
			status: http.StatusBadRequest,
			kind:   "validation_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.db.AddAssignments(f.schedule.ID, domain.Assignment{GuideID: f.boris.ID, IsLeader: true})
			id := f.schedule.ID
			if tt.id != nil {
				id = tt.id(f)
			}

			rec := f.put(id, tt.body(f))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.kind, errorKind(t, rec))
			assignments := f.db.Assignments(f.schedule.ID)
			require.Len(t, assignments, 1)
			assert.Equal(t, f.boris.ID, assignments[0].GuideID)
		})
	}
}
