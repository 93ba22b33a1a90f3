package companies

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	companiesService "github.com/m04kA/TourOps-BookingService/internal/service/companies"
	"github.com/m04kA/TourOps-BookingService/internal/testutil/fakes"
)

func newHandler() *Handler {
	db := fakes.NewDB()
	svc := companiesService.NewService(fakes.NewCompanyRepo(db), fakes.Logger{})
	return NewHandler(svc, fakes.Logger{})
}

func withID(req *http.Request, id string) *http.Request {
	return mux.SetURLVars(req, map[string]string{"companyId": id})
}

func TestCompanyLifecycle(t *testing.T) {
	h := newHandler()

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/companies",
		strings.NewReader(`{"name": "Blue Lagoon Tours", "commissionPercentage": 12.5}`)))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"commissionPercentage":12.5`)
	assert.Contains(t, rec.Body.String(), `"status":true`)

	rec = httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/companies?status=true", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)

	rec = httptest.NewRecorder()
	h.ToggleStatus(rec, withID(httptest.NewRequest(http.MethodPatch, "/api/v1/companies/1/toggle-status", nil), "1"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":false`)

	rec = httptest.NewRecorder()
	h.Delete(rec, withID(httptest.NewRequest(http.MethodDelete, "/api/v1/companies/1", nil), "1"))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.Get(rec, withID(httptest.NewRequest(http.MethodGet, "/api/v1/companies/1", nil), "1"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreate_Invalid(t *testing.T) {
	rec := httptest.NewRecorder()

	newHandler().Create(rec, httptest.NewRequest(http.MethodPost, "/api/v1/companies",
		strings.NewReader(`{"name": "", "commissionPercentage": 150}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"validation_error"`)
}
