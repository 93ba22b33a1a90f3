package update_booking

import (
	"github.com/m04kA/TourOps-BookingService/internal/service/bookings/models"
	updateBooking "github.com/m04kA/TourOps-BookingService/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model, отсутствующие поля не меняются
type UpdateBookingRequest struct {
	ActivityScheduleID   *int64   `json:"activityScheduleId,omitempty"`
	CompanyID            *int64   `json:"companyId,omitempty"`
	ClearCompany         bool     `json:"clearCompany,omitempty"` // true отвязывает бронирование от компании
	Transport            *bool    `json:"transport,omitempty"`
	PassengerCount       *int     `json:"passengerCount,omitempty"`
	NumberOfPeople       *int     `json:"numberOfPeople,omitempty"`
	AdultCount           *int     `json:"adultCount,omitempty"`
	ChildCount           *int     `json:"childCount,omitempty"`
	SeniorCount          *int     `json:"seniorCount,omitempty"`
	CommissionPercentage *float64 `json:"commissionPercentage,omitempty"`
	CustomerName         *string  `json:"customerName,omitempty"`
	CustomerEmail        *string  `json:"customerEmail,omitempty"`
	CustomerPhone        *string  `json:"customerPhone,omitempty"`
	Status               *string  `json:"status,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(id int64) *updateBooking.Request {
	return &updateBooking.Request{
		ID:                   id,
		ActivityScheduleID:   r.ActivityScheduleID,
		CompanyID:            r.CompanyID,
		ClearCompany:         r.ClearCompany,
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
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *models.BookingMutationResponse {
	return &models.BookingMutationResponse{
		Booking:         *models.FromDomainBooking(resp.Booking),
		AvailableSpaces: resp.AvailableSpaces,
	}
}
