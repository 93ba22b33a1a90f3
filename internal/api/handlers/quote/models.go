package quote

import (
	"net/http"
	"strconv"

	getAvailability "github.com/m04kA/TourOps-BookingService/internal/usecase/get_availability"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	ScheduleID      int64   `json:"scheduleId"`
	AdultCount      int     `json:"adultCount"`
	ChildCount      int     `json:"childCount"`
	SeniorCount     int     `json:"seniorCount"`
	AdultPrice      float64 `json:"adultPrice"`
	ChildPrice      float64 `json:"childPrice"`
	SeniorPrice     float64 `json:"seniorPrice"`
	TotalPrice      float64 `json:"totalPrice"`
	AvailableSpaces int     `json:"availableSpaces"`
}

// ToUseCaseRequest формирует запрос к use case, отсутствующие счетчики равны нулю
func ToUseCaseRequest(r *http.Request, scheduleID int64) (*getAvailability.QuoteRequest, error) {
	req := &getAvailability.QuoteRequest{ScheduleID: scheduleID}

	counts := []struct {
		name string
		dst  *int
	}{
		{"adultCount", &req.AdultCount},
		{"childCount", &req.ChildCount},
		{"seniorCount", &req.SeniorCount},
	}
	for _, c := range counts {
		raw := r.URL.Query().Get(c.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		*c.dst = v
	}

	return req, nil
}

// FromUseCaseResponse конвертирует расчет в HTTP response
func FromUseCaseResponse(q *getAvailability.Quote) *QuoteResponse {
	return &QuoteResponse{
		ScheduleID:      q.ScheduleID,
		AdultCount:      q.Counts.Adult,
		ChildCount:      q.Counts.Child,
		SeniorCount:     q.Counts.Senior,
		AdultPrice:      q.Prices.Adult,
		ChildPrice:      q.Prices.Child,
		SeniorPrice:     q.Prices.Senior,
		TotalPrice:      q.TotalPrice,
		AvailableSpaces: q.AvailableSpaces,
	}
}
