package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/TourOps-BookingService/internal/service/bookings"
	"github.com/m04kA/TourOps-BookingService/internal/service/bookings/models"
	"github.com/m04kA/TourOps-BookingService/internal/testutil/fakes"
)

type stubService struct {
	resp *models.BookingMutationResponse
	err  error
}

func (s *stubService) Cancel(context.Context, int64) (*models.BookingMutationResponse, error) {
	return s.resp, s.err
}

func serve(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+id+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	resp := &models.BookingMutationResponse{
		Booking:         models.BookingResponse{ID: 3, Status: "cancelled"},
		AvailableSpaces: 10,
	}

	rec := serve(NewHandler(&stubService{resp: resp}, fakes.Logger{}), "3")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
	assert.Contains(t, rec.Body.String(), `"availableSpaces":10`)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(NewHandler(&stubService{}, fakes.Logger{}), "0").Code)
	assert.Equal(t, http.StatusNotFound,
		serve(NewHandler(&stubService{err: bookings.ErrBookingNotFound}, fakes.Logger{}), "3").Code)
	assert.Equal(t, http.StatusConflict,
		serve(NewHandler(&stubService{err: bookings.ErrAlreadyCancelled}, fakes.Logger{}), "3").Code)
	assert.Equal(t, http.StatusInternalServerError,
		serve(NewHandler(&stubService{err: bookings.ErrInternal}, fakes.Logger{}), "3").Code)
}
