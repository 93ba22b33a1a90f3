package auto_assign

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/internal/testutil/fakes"
	assignGuides "github.com/m04kA/TourOps-BookingService/internal/usecase/assign_guides"
)

type stubUseCase struct {
	assignments []domain.Assignment
	err         error
}

func (s *stubUseCase) AutoAssign(context.Context, int64) ([]domain.Assignment, error) {
	return s.assignments, s.err
}

func serve(h *Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedules/4/guides/auto", nil)
	req = mux.SetURLVars(req, map[string]string{"scheduleId": "4"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	uc := &stubUseCase{assignments: []domain.Assignment{{ScheduleID: 4, GuideID: 1, GuideName: "Ana", IsLeader: true}}}

	rec := serve(NewHandler(uc, fakes.Logger{}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"guideName":"Ana"`)
	assert.Contains(t, rec.Body.String(), `"isLeader":true`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "schedule", err: assignGuides.ErrScheduleNotFound, status: http.StatusNotFound},
		{name: "already assigned", err: assignGuides.ErrAlreadyAssigned, status: http.StatusConflict},
		{name: "no guides", err: fmt.Errorf("%w: %w", assignGuides.ErrNoGuidesAvailable, domain.ErrNoGuidesAvailable), status: http.StatusConflict},
		{name: "internal", err: assignGuides.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, serve(NewHandler(&stubUseCase{err: tt.err}, fakes.Logger{})).Code)
		})
	}
}
