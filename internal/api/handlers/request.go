package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

var (
	// ErrEmptyBody возвращается, когда тело запроса пустое
	ErrEmptyBody = errors.New("handlers: empty request body")

	// ErrInvalidParam возвращается при некорректном параметре пути или запроса
	ErrInvalidParam = errors.New("handlers: invalid parameter")
)

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 1 << 20

// DecodeJSON декодирует тело запроса в dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	return nil
}

// PathID читает положительный идентификатор из переменной маршрута
func PathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, raw)
	}
	return id, nil
}

// QueryInt64 читает необязательный положительный идентификатор из query
func QueryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, raw)
	}
	return &v, nil
}

// QueryBool читает необязательный флаг из query
func QueryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, raw)
	}
	return &v, nil
}

// QueryString читает необязательную строку из query
func QueryString(r *http.Request, name string) *string {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	return &raw
}

// QueryPagination читает page и limit, подставляя значения по умолчанию
// limit больше domain.MaxLimit отклоняется
func QueryPagination(r *http.Request) (int, int, error) {
	page, limit := domain.DefaultPage, domain.DefaultLimit

	if raw := r.URL.Query().Get("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return 0, 0, fmt.Errorf("%w: page=%q", ErrInvalidParam, raw)
		}
		page = v
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > domain.MaxLimit {
			return 0, 0, fmt.Errorf("%w: limit=%q", ErrInvalidParam, raw)
		}
		limit = v
	}

	return page, limit, nil
}
