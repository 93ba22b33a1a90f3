package update_booking

import "github.com/m04kA/TourOps-BookingService/internal/domain"

// Request частичное изменение бронирования, nil означает "не менять"
type Request struct {
	ID                   int64
	ActivityScheduleID   *int64
	CompanyID            *int64
	ClearCompany         bool // отвязать бронирование от компании, несовместимо с CompanyID
	Transport            *bool
	PassengerCount       *int
	NumberOfPeople       *int
	AdultCount           *int
	ChildCount           *int
	SeniorCount          *int
	CommissionPercentage *float64
	CustomerName         *string
	CustomerEmail        *string
	CustomerPhone        *string
	Status               *string
}

// Response модель ответа с измененным бронированием
type Response struct {
	Booking         *domain.Booking // Бронирование после изменения
	AvailableSpaces int             // Свободные места проведения, к которому относится бронирование
}

// merge накладывает переданные поля на копию сохраненного бронирования
func (r *Request) merge(stored *domain.Booking) *domain.Booking {
	b := *stored
	if r.ActivityScheduleID != nil {
		b.ActivityScheduleID = *r.ActivityScheduleID
	}
	if r.CompanyID != nil {
		b.CompanyID = r.CompanyID
	}
	if r.ClearCompany {
		b.CompanyID = nil
	}
	if r.Transport != nil {
		b.Transport = *r.Transport
	}
	if r.PassengerCount != nil {
		b.PassengerCount = r.PassengerCount
	}
	if r.NumberOfPeople != nil {
		b.NumberOfPeople = *r.NumberOfPeople
	}
	if r.AdultCount != nil {
		b.AdultCount = *r.AdultCount
	}
	if r.ChildCount != nil {
		b.ChildCount = *r.ChildCount
	}
	if r.SeniorCount != nil {
		b.SeniorCount = *r.SeniorCount
	}
	if r.CustomerName != nil {
		b.CustomerName = *r.CustomerName
	}
	if r.CustomerEmail != nil {
		b.CustomerEmail = r.CustomerEmail
	}
	if r.CustomerPhone != nil {
		b.CustomerPhone = r.CustomerPhone
	}
	return &b
}

// companyChanged возвращает true, если запрос переносит бронирование на другую компанию
func (r *Request) companyChanged(stored *domain.Booking) bool {
	if r.CompanyID == nil {
		return false
	}
	return stored.CompanyID == nil || *stored.CompanyID != *r.CompanyID
}
