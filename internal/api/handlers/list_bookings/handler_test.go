package list_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TourOps-BookingService/internal/service/bookings"
	"github.com/m04kA/TourOps-BookingService/internal/service/bookings/models"
	"github.com/m04kA/TourOps-BookingService/internal/testutil/fakes"
	"github.com/m04kA/TourOps-BookingService/pkg/types"
)

type stubService struct {
	got *models.ListBookingsRequest
	err error
}

func (s *stubService) List(_ context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingListResponse{
		Items:      []models.BookingResponse{},
		Pagination: types.NewPagination(req.Page, req.Limit, 0),
	}, nil
}

func TestHandle_Filters(t *testing.T) {
	svc := &stubService{}
	h := NewHandler(svc, fakes.Logger{})
	rec := httptest.NewRecorder()

	h.Handle(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/bookings?status=confirmed&activityScheduleId=4&companyId=2&page=2&limit=20", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, "confirmed", *svc.got.Status)
	assert.Equal(t, int64(4), *svc.got.ActivityScheduleID)
	assert.Equal(t, int64(2), *svc.got.CompanyID)
	assert.Equal(t, 2, svc.got.Page)
	assert.Equal(t, 20, svc.got.Limit)
}

func TestHandleByCompany_PathWins(t *testing.T) {
	svc := &stubService{}
	h := NewHandler(svc, fakes.Logger{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/3/bookings?companyId=99", nil)
	req = mux.SetURLVars(req, map[string]string{"companyId": "3"})
	rec := httptest.NewRecorder()

	h.HandleByCompany(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), *svc.got.CompanyID)
}

func TestHandle_BadParams(t *testing.T) {
	tests := []struct {
		name string
		url  string
		err  error
	}{
		{name: "limit too big", url: "/api/v1/bookings?limit=1000"},
		{name: "bad schedule id", url: "/api/v1/bookings?activityScheduleId=x"},
		{name: "unknown status", url: "/api/v1/bookings?status=archived", err: bookings.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubService{err: tt.err}, fakes.Logger{})
			rec := httptest.NewRecorder()

			h.Handle(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
