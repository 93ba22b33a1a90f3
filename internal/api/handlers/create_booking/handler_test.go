package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TourOps-BookingService/internal/api/middleware"
	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/internal/testutil/fakes"
	createBooking "github.com/m04kA/TourOps-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/TourOps-BookingService/pkg/metrics"
)

type stubUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.got = req
	return s.resp, s.err
}

const validBody = `{
	"activityScheduleId": 11,
	"numberOfPeople": 3,
	"adultCount": 2,
	"childCount": 1,
	"customerName": "Ana"
}`

func serve(h *Handler, body string, userID int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{
		Booking: &domain.Booking{
			ID:                 5,
			ActivityScheduleID: 11,
			NumberOfPeople:     3,
			AdultCount:         2,
			ChildCount:         1,
			CustomerName:       "Ana",
			Status:             domain.StatusPending,
			TotalPrice:         250,
		},
		AvailableSpaces: 7,
	}}
	h := NewHandler(uc, fakes.Logger{})

	rec := serve(h, validBody, 42)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(11), uc.got.ActivityScheduleID)
	assert.Equal(t, 2, uc.got.AdultCount)
	require.NotNil(t, uc.got.CreatedBy)
	assert.Equal(t, int64(42), *uc.got.CreatedBy)

	var body struct {
		Booking struct {
			ID         int64   `json:"id"`
			Status     string  `json:"status"`
			TotalPrice float64 `json:"totalPrice"`
		} `json:"booking"`
		AvailableSpaces int `json:"availableSpaces"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(5), body.Booking.ID)
	assert.Equal(t, "pending", body.Booking.Status)
	assert.Equal(t, 250.0, body.Booking.TotalPrice)
	assert.Equal(t, 7, body.AvailableSpaces)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
		kind   string
	}{
		{name: "empty body", body: "", status: http.StatusBadRequest, kind: "validation_error"},
		{name: "broken json", body: "{", status: http.StatusBadRequest, kind: "validation_error"},
		{
			name:   "invalid input",
			body:   validBody,
			err:    fmt.Errorf("%w: customerName is required", createBooking.ErrInvalidInput),
			status: http.StatusBadRequest,
			kind:   "validation_error",
		},
		{
			name:   "count mismatch",
			body:   validBody,
			err:    fmt.Errorf("%w: %w", createBooking.ErrCountMismatch, &domain.CountMismatchError{Sum: 3, Total: 4}),
			status: http.StatusUnprocessableEntity,
			kind:   "count_mismatch",
		},
		{
			name:   "capacity exceeded",
			body:   validBody,
			err:    fmt.Errorf("%w: %w", createBooking.ErrCapacityExceeded, &domain.CapacityExceededError{Requested: 3, Available: 1}),
			status: http.StatusConflict,
			kind:   "capacity_exceeded",
		},
		{name: "schedule not found", body: validBody, err: createBooking.ErrScheduleNotFound, status: http.StatusNotFound, kind: "not_found"},
		{name: "schedule inactive", body: validBody, err: createBooking.ErrScheduleInactive, status: http.StatusConflict, kind: "conflict"},
		{name: "company not found", body: validBody, err: createBooking.ErrCompanyNotFound, status: http.StatusNotFound, kind: "not_found"},
		{name: "internal", body: validBody, err: createBooking.ErrInternal, status: http.StatusInternalServerError, kind: "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, fakes.Logger{})

			rec := serve(h, tt.body, 1)

			assert.Equal(t, tt.status, rec.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.kind, body["error"])
		})
	}
}

func TestHandle_CapacityDetails(t *testing.T) {
	err := fmt.Errorf("%w: %w", createBooking.ErrCapacityExceeded, &domain.CapacityExceededError{Requested: 3, Available: 1})
	h := NewHandler(&stubUseCase{err: err}, fakes.Logger{})

	rec := serve(h, validBody, 1)

	var body struct {
		Details map[string]int `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]int{"requested": 3, "availableSpaces": 1}, body.Details)
}

func TestHandle_ValidationMessagePerStep(t *testing.T) {
	db := fakes.NewDB()
	activity := db.AddActivity(domain.Activity{Title: "Old town walk", PartySize: 10, AdultPrice: 50, IsActive: true})
	start := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	schedule := db.AddSchedule(domain.Schedule{
		ActivityID:     activity.ID,
		ScheduledStart: start,
		ScheduledEnd:   start.Add(2 * time.Hour),
		Capacity:       10,
		IsActive:       true,
	})
	company := db.AddCompany(domain.Company{Name: "Agency", CommissionPercentage: 10, IsActive: true})

	uc := createBooking.NewUseCase(
		fakes.NewBookingRepo(db),
		fakes.NewScheduleRepo(db),
		fakes.NewActivityRepo(db),
		fakes.NewCompanyRepo(db),
		&fakes.TxManager{},
		(*metrics.Metrics)(nil),
		fakes.Logger{},
	)
	h := NewHandler(uc, fakes.Logger{})

	body := func(extra string) string {
		return fmt.Sprintf(`{"activityScheduleId": %d, "numberOfPeople": 2, "adultCount": 2, "customerName": "Ana"%s}`,
			schedule.ID, extra)
	}

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "empty customer name", body: body(`, "customerName": "  "`), message: msgInvalidCustomerName},
		{name: "zero people", body: body(`, "numberOfPeople": 0, "adultCount": 0`), message: msgInvalidPartySize},
		{name: "negative category", body: body(`, "adultCount": 3, "childCount": -1`), message: msgInvalidCounts},
		{name: "transport without passengers", body: body(`, "transport": true`), message: msgPassengerCount},
		{name: "transport with zero passengers", body: body(`, "transport": true, "passengerCount": 0`), message: msgPassengerCount},
		{
			name:    "commission out of range",
			body:    body(fmt.Sprintf(`, "companyId": %d, "commissionPercentage": 150`, company.ID)),
			message: msgInvalidCommission,
		},
		{name: "malformed email", body: body(`, "customerEmail": "nope"`), message: msgInvalidContacts},
		{name: "cancelled status", body: body(`, "status": "cancelled"`), message: msgInvalidStatus},
	}

	seen := make(map[string]string)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, tt.body, 1)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			var resp struct {
				Error   string `json:"error"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "validation_error", resp.Error)
			assert.Equal(t, tt.message, resp.Message)
			seen[tt.message] = tt.name
		})
	}

	assert.Len(t, seen, 7)
	current, ok := db.Schedule(schedule.ID)
	require.True(t, ok)
	assert.Equal(t, 0, current.BookedCount)
}
