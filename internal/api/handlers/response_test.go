package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRespondCapacityExceeded_Details(t *testing.T) {
	rec := httptest.NewRecorder()
	err := fmt.Errorf("%w: %w", errors.New("create_booking: capacity exceeded"),
		&domain.CapacityExceededError{Requested: 5, Available: 2})

	RespondCapacityExceeded(rec, "мест нет", err)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, KindCapacityExceeded, body.Error)
	assert.Equal(t, 5.0, body.Details["requested"])
	assert.Equal(t, 2.0, body.Details["availableSpaces"])
}

func TestRespondCapacityExceeded_NoDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondCapacityExceeded(rec, "мест нет", errors.New("plain"))

	body := decodeError(t, rec)
	assert.Equal(t, KindCapacityExceeded, body.Error)
	assert.Nil(t, body.Details)
}

func TestRespondCountMismatch(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondCountMismatch(rec, "не сходится", fmt.Errorf("wrapped: %w", &domain.CountMismatchError{Sum: 3, Total: 4}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, KindCountMismatch, body.Error)
	assert.Equal(t, 3.0, body.Details["sum"])
	assert.Equal(t, 4.0, body.Details["numberOfPeople"])
}

func TestRespondKinds(t *testing.T) {
	tests := []struct {
		name    string
		respond func(w http.ResponseWriter)
		status  int
		kind    string
	}{
		{"bad request", func(w http.ResponseWriter) { RespondBadRequest(w, "x") }, http.StatusBadRequest, KindValidation},
		{"unauthorized", func(w http.ResponseWriter) { RespondUnauthorized(w, "x") }, http.StatusUnauthorized, KindUnauthorized},
		{"not found", func(w http.ResponseWriter) { RespondNotFound(w, "x") }, http.StatusNotFound, KindNotFound},
		{"conflict", func(w http.ResponseWriter) { RespondConflict(w, "x") }, http.StatusConflict, KindConflict},
		{"leader conflict", func(w http.ResponseWriter) { RespondLeaderConflict(w, "x") }, http.StatusConflict, KindLeaderConflict},
		{"internal", RespondInternalError, http.StatusInternalServerError, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.respond(rec)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.kind, decodeError(t, rec).Error)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	err := DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("")), &dst)
	assert.ErrorIs(t, err, ErrEmptyBody)

	err = DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{broken")), &dst)
	assert.Error(t, err)

	err = DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ana"}`)), &dst)
	require.NoError(t, err)
	assert.Equal(t, "Ana", dst.Name)
}

func TestPathID(t *testing.T) {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"bookingId": "42"})
	id, err := PathID(req, "bookingId")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "abc", "0", "-3"} {
		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"bookingId": raw})
		_, err := PathID(req, "bookingId")
		assert.ErrorIs(t, err, ErrInvalidParam, raw)
	}
}

func TestQueryPagination(t *testing.T) {
	page, limit, err := QueryPagination(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPage, page)
	assert.Equal(t, domain.DefaultLimit, limit)

	page, limit, err = QueryPagination(httptest.NewRequest(http.MethodGet, "/?page=3&limit=50", nil))
	require.NoError(t, err)
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, limit)

	_, _, err = QueryPagination(httptest.NewRequest(http.MethodGet, "/?limit=500", nil))
	assert.ErrorIs(t, err, ErrInvalidParam)

	_, _, err = QueryPagination(httptest.NewRequest(http.MethodGet, "/?page=0", nil))
	assert.ErrorIs(t, err, ErrInvalidParam)
}

func TestQueryHelpers(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?companyId=7&onlyActive=false&status=%20pending%20", nil)

	companyID, err := QueryInt64(req, "companyId")
	require.NoError(t, err)
	assert.Equal(t, int64(7), *companyID)

	missing, err := QueryInt64(req, "activityScheduleId")
	require.NoError(t, err)
	assert.Nil(t, missing)

	onlyActive, err := QueryBool(req, "onlyActive")
	require.NoError(t, err)
	assert.False(t, *onlyActive)

	assert.Equal(t, "pending", *QueryString(req, "status"))
	assert.Nil(t, QueryString(req, "unknown"))

	_, err = QueryBool(httptest.NewRequest(http.MethodGet, "/?onlyActive=maybe", nil), "onlyActive")
	assert.ErrorIs(t, err, ErrInvalidParam)
}
