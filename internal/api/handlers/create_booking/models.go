package create_booking

import (
	"github.com/m04kA/TourOps-BookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/TourOps-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ActivityScheduleID   int64    `json:"activityScheduleId"`
	CompanyID            *int64   `json:"companyId,omitempty"`
	Transport            bool     `json:"transport"`
	PassengerCount       *int     `json:"passengerCount,omitempty"`
	NumberOfPeople       int      `json:"numberOfPeople"`
	AdultCount           int      `json:"adultCount"`
	ChildCount           int      `json:"childCount"`
	SeniorCount          int      `json:"seniorCount"`
	CommissionPercentage *float64 `json:"commissionPercentage,omitempty"`
	CustomerName         string   `json:"customerName"`
	CustomerEmail        *string  `json:"customerEmail,omitempty"`
	CustomerPhone        *string  `json:"customerPhone,omitempty"`
	Status               *string  `json:"status,omitempty"` // pending | confirmed
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(createdBy *int64) *createBooking.Request {
	return &createBooking.Request{
		ActivityScheduleID:   r.ActivityScheduleID,
		CompanyID:            r.CompanyID,
		Transport:            r.Transport,
		PassengerCount:       r.PassengerCount,
		NumberOfPeople:       r.NumberOfPeople,
		AdultCount:           r.AdultCount,
		ChildCount:           r.ChildCount,
		SeniorCount:          r.SeniorCount,
		CommissionPercentage: r.CommissionPercentage,
		CustomerName:         r.CustomerName,
		CustomerEmail:        r.CustomerEmail,
		CustomerPhone:        r.CustomerPhone,
		Status:               r.Status,
		CreatedBy:            createdBy,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingMutationResponse {
	return &models.BookingMutationResponse{
		Booking:         *models.FromDomainBooking(resp.Booking),
		AvailableSpaces: resp.AvailableSpaces,
	}
}
