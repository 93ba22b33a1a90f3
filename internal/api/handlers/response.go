package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

// Виды ошибок в теле ответа
const (
	KindValidation       = "validation_error"
	KindCapacityExceeded = "capacity_exceeded"
	KindCountMismatch    = "count_mismatch"
	KindConflict         = "conflict"
	KindLeaderConflict   = "leader_conflict"
	KindNotFound         = "not_found"
	KindUnauthorized     = "unauthorized"
	KindInternal         = "internal_error"
)

const msgInternalError = "внутренняя ошибка сервера"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RespondJSON пишет payload в формате JSON с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondNoContent пишет пустой ответ 204
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondError пишет ошибку указанного вида
func RespondError(w http.ResponseWriter, status int, kind, message string) {
	RespondJSON(w, status, ErrorResponse{Error: kind, Message: message})
}

// RespondErrorWithDetails пишет ошибку с структурированными деталями
func RespondErrorWithDetails(w http.ResponseWriter, status int, kind, message string, details map[string]interface{}) {
	RespondJSON(w, status, ErrorResponse{Error: kind, Message: message, Details: details})
}

// RespondBadRequest 400 validation_error
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, KindValidation, message)
}

// RespondUnauthorized 401
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, KindUnauthorized, message)
}

// RespondNotFound 404 not_found
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, KindNotFound, message)
}

// RespondConflict 409 conflict
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, KindConflict, message)
}

// RespondLeaderConflict 409 leader_conflict
func RespondLeaderConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, KindLeaderConflict, message)
}

// RespondCapacityExceeded 409 capacity_exceeded
// Если в цепочке err есть domain.CapacityExceededError, в детали попадают requested и availableSpaces
func RespondCapacityExceeded(w http.ResponseWriter, message string, err error) {
	var capErr *domain.CapacityExceededError
	if errors.As(err, &capErr) {
		RespondErrorWithDetails(w, http.StatusConflict, KindCapacityExceeded, message, map[string]interface{}{
			"requested":       capErr.Requested,
			"availableSpaces": capErr.Available,
		})
		return
	}
	RespondError(w, http.StatusConflict, KindCapacityExceeded, message)
}

// RespondCountMismatch 422 count_mismatch с деталями sum и numberOfPeople
func RespondCountMismatch(w http.ResponseWriter, message string, err error) {
	var mismatch *domain.CountMismatchError
	if errors.As(err, &mismatch) {
		RespondErrorWithDetails(w, http.StatusUnprocessableEntity, KindCountMismatch, message, map[string]interface{}{
			"sum":            mismatch.Sum,
			"numberOfPeople": mismatch.Total,
		})
		return
	}
	RespondError(w, http.StatusUnprocessableEntity, KindCountMismatch, message)
}

// RespondInternalError 500 internal_error без подробностей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, KindInternal, msgInternalError)
}
