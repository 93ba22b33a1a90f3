package bulk_create_schedules

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/internal/testutil/fakes"
	bulkCreateSchedules "github.com/m04kA/TourOps-BookingService/internal/usecase/bulk_create_schedules"
	"github.com/m04kA/TourOps-BookingService/pkg/types"
)

type stubUseCase struct {
	got  *bulkCreateSchedules.Request
	resp *bulkCreateSchedules.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *bulkCreateSchedules.Request) (*bulkCreateSchedules.Response, error) {
	s.got = req
	return s.resp, s.err
}

const body = `{
	"startDate": "2026-06-01",
	"endDate": "2026-06-02",
	"timeSlots": [{"startTime": "09:00", "endTime": "12:00", "capacity": 10}]
}`

func serve(h *Handler, activityID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/activities/"+activityID+"/schedules/bulk", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"activityId": activityID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_ReportsConflicts(t *testing.T) {
	start, _ := types.NewTimeStringFromString("09:00")
	end, _ := types.NewTimeStringFromString("12:00")
	uc := &stubUseCase{resp: &bulkCreateSchedules.Response{
		Created:   1,
		Schedules: []*domain.Schedule{{ID: 40, ActivityID: 2, Capacity: 10, IsActive: true}},
		Conflicts: []bulkCreateSchedules.Conflict{{
			Date:       "2026-06-02",
			TimeSlot:   domain.TimeSlot{StartTime: start, EndTime: end, Capacity: 10},
			Reason:     "overlaps an active schedule",
			ScheduleID: 17,
		}},
	}}

	rec := serve(NewHandler(uc, fakes.Logger{}), "2", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(2), uc.got.ActivityID)
	require.Len(t, uc.got.TimeSlots, 1)
	assert.Equal(t, "09:00", uc.got.TimeSlots[0].StartTime)
	assert.Nil(t, uc.got.ValidateOverlaps)

	var resp BulkCreateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Created)
	assert.Len(t, resp.Schedules, 1)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, ConflictResponse{
		Date:       "2026-06-02",
		StartTime:  "09:00",
		EndTime:    "12:00",
		Capacity:   10,
		Reason:     "overlaps an active schedule",
		ScheduleID: 17,
	}, resp.Conflicts[0])
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		activityID string
		err        error
		status     int
	}{
		{name: "bad activity id", activityID: "x", status: http.StatusBadRequest},
		{name: "invalid slots", activityID: "2", err: bulkCreateSchedules.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "range too long", activityID: "2", err: bulkCreateSchedules.ErrRangeTooLong, status: http.StatusBadRequest},
		{name: "activity not found", activityID: "2", err: bulkCreateSchedules.ErrActivityNotFound, status: http.StatusNotFound},
		{name: "internal", activityID: "2", err: bulkCreateSchedules.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&stubUseCase{err: tt.err}, fakes.Logger{}), tt.activityID, body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandle_ValidationMessages(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "dates", err: bulkCreateSchedules.ErrInvalidDates, message: msgInvalidDates},
		{name: "no slots", err: bulkCreateSchedules.ErrNoTimeSlots, message: msgNoTimeSlots},
		{name: "slot", err: bulkCreateSchedules.ErrInvalidTimeSlot, message: msgInvalidTimeSlot},
		{name: "range", err: bulkCreateSchedules.ErrRangeTooLong, message: msgRangeTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&stubUseCase{err: tt.err}, fakes.Logger{}), "2", body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			var resp struct {
				Error   string `json:"error"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "validation_error", resp.Error)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

func TestHandle_PartialSuccessOnInternalError(t *testing.T) {
	uc := &stubUseCase{
		resp: &bulkCreateSchedules.Response{
			Created:   2,
			Schedules: []*domain.Schedule{{ID: 40}, {ID: 41}},
		},
		err: bulkCreateSchedules.ErrInternal,
	}

	rec := serve(NewHandler(uc, fakes.Logger{}), "2", body)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Details struct {
			Created     int     `json:"created"`
			ScheduleIDs []int64 `json:"scheduleIds"`
			Conflicts   int     `json:"conflicts"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "internal_error", resp.Error)
	assert.Equal(t, msgPartiallyCreated, resp.Message)
	assert.Equal(t, 2, resp.Details.Created)
	assert.Equal(t, []int64{40, 41}, resp.Details.ScheduleIDs)
	assert.Zero(t, resp.Details.Conflicts)
}
