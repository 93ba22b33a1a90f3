package update_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/internal/testutil/fakes"
	updateBooking "github.com/m04kA/TourOps-BookingService/internal/usecase/update_booking"
)

type stubUseCase struct {
	got  *updateBooking.Request
	resp *updateBooking.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *updateBooking.Request) (*updateBooking.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(h *Handler, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+id, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_PartialUpdate(t *testing.T) {
	uc := &stubUseCase{resp: &updateBooking.Response{
		Booking:         &domain.Booking{ID: 9, ActivityScheduleID: 12, NumberOfPeople: 4, Status: domain.StatusConfirmed},
		AvailableSpaces: 2,
	}}
	h := NewHandler(uc, fakes.Logger{})

	rec := serve(h, "9", `{"activityScheduleId": 12, "numberOfPeople": 4, "adultCount": 4}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(9), uc.got.ID)
	assert.Equal(t, int64(12), *uc.got.ActivityScheduleID)
	assert.Equal(t, 4, *uc.got.NumberOfPeople)
	assert.Nil(t, uc.got.ChildCount)
	assert.Nil(t, uc.got.CustomerName)
	assert.Contains(t, rec.Body.String(), `"availableSpaces":2`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		err    error
		status int
		kind   string
	}{
		{name: "bad id", id: "abc", status: http.StatusBadRequest, kind: "validation_error"},
		{name: "not found", id: "9", err: updateBooking.ErrBookingNotFound, status: http.StatusNotFound, kind: "not_found"},
		{name: "cancelled", id: "9", err: updateBooking.ErrBookingCancelled, status: http.StatusConflict, kind: "conflict"},
		{name: "target inactive", id: "9", err: updateBooking.ErrScheduleInactive, status: http.StatusConflict, kind: "conflict"},
		{
			name:   "capacity on target",
			id:     "9",
			err:    fmt.Errorf("%w: %w", updateBooking.ErrCapacityExceeded, &domain.CapacityExceededError{Requested: 4, Available: 1}),
			status: http.StatusConflict,
			kind:   "capacity_exceeded",
		},
		{
			name:   "count mismatch",
			id:     "9",
			err:    fmt.Errorf("%w: %w", updateBooking.ErrCountMismatch, &domain.CountMismatchError{Sum: 2, Total: 4}),
			status: http.StatusUnprocessableEntity,
			kind:   "count_mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, fakes.Logger{})

			rec := serve(h, tt.id, `{"numberOfPeople": 4}`)

			assert.Equal(t, tt.status, rec.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.kind, body["error"])
		})
	}
}

func TestHandle_ValidationMessagePerStep(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "customer name", err: fmt.Errorf("%w: customerName is required", updateBooking.ErrInvalidCustomerName), message: msgInvalidCustomerName},
		{name: "party size", err: fmt.Errorf("%w: numberOfPeople must be positive", updateBooking.ErrInvalidPartySize), message: msgInvalidPartySize},
		{name: "category counts", err: updateBooking.ErrInvalidCategoryCounts, message: msgInvalidCounts},
		{name: "passenger count", err: updateBooking.ErrPassengerCountRequired, message: msgPassengerCount},
		{name: "commission", err: updateBooking.ErrInvalidCommission, message: msgInvalidCommission},
		{name: "contacts", err: updateBooking.ErrInvalidContacts, message: msgInvalidContacts},
		{name: "status", err: updateBooking.ErrInvalidStatus, message: msgInvalidStatus},
		{name: "generic", err: updateBooking.ErrInvalidInput, message: msgInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, fakes.Logger{})

			rec := serve(h, "9", `{"customerName": ""}`)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			var body struct {
				Error   string `json:"error"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "validation_error", body.Error)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestHandle_ClearCompany(t *testing.T) {
	uc := &stubUseCase{resp: &updateBooking.Response{
		Booking:         &domain.Booking{ID: 9, ActivityScheduleID: 12, NumberOfPeople: 2},
		AvailableSpaces: 3,
	}}
	h := NewHandler(uc, fakes.Logger{})

	rec := serve(h, "9", `{"clearCompany": true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.True(t, uc.got.ClearCompany)
	assert.Nil(t, uc.got.CompanyID)
}
