package models

import (
	"errors"
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение страницы бронирований
type ListBookingsRequest struct {
	Status             *string
	ActivityScheduleID *int64
	CompanyID          *int64
	Page               int
	Limit              int
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter(page, limit int) (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		ActivityScheduleID: r.ActivityScheduleID,
		CompanyID:          r.CompanyID,
		Page:               page,
		Limit:              limit,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                   int64      `json:"id"`
	ActivityScheduleID   int64      `json:"activityScheduleId"`
	CompanyID            *int64     `json:"companyId,omitempty"`
	Transport            bool       `json:"transport"`
	PassengerCount       *int       `json:"passengerCount,omitempty"`
	NumberOfPeople       int        `json:"numberOfPeople"`
	AdultCount           int        `json:"adultCount"`
	ChildCount           int        `json:"childCount"`
	SeniorCount          int        `json:"seniorCount"`
	CommissionPercentage *float64   `json:"commissionPercentage,omitempty"`
	CustomerName         string     `json:"customerName"`
	CustomerEmail        *string    `json:"customerEmail,omitempty"`
	CustomerPhone        *string    `json:"customerPhone,omitempty"`
	Status               string     `json:"status"`
	AdultPrice           float64    `json:"adultPrice"`
	ChildPrice           float64    `json:"childPrice"`
	SeniorPrice          float64    `json:"seniorPrice"`
	TotalPrice           float64    `json:"totalPrice"`
	CreatedBy            *int64     `json:"createdBy,omitempty"`
	CancelledAt          *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// BookingMutationResponse бронирование и остаток мест после изменения
type BookingMutationResponse struct {
	Booking         BookingResponse `json:"booking"`
	AvailableSpaces int             `json:"availableSpaces"`
}

// BookingListResponse ответ со страницей бронирований
type BookingListResponse struct {
	Items      []BookingResponse `json:"items"`
	Pagination types.Pagination  `json:"pagination"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                   b.ID,
		ActivityScheduleID:   b.ActivityScheduleID,
		CompanyID:            b.CompanyID,
		Transport:            b.Transport,
		PassengerCount:       b.PassengerCount,
		NumberOfPeople:       b.NumberOfPeople,
		AdultCount:           b.AdultCount,
		ChildCount:           b.ChildCount,
		SeniorCount:          b.SeniorCount,
		CommissionPercentage: b.CommissionPercentage,
		CustomerName:         b.CustomerName,
		CustomerEmail:        b.CustomerEmail,
		CustomerPhone:        b.CustomerPhone,
		Status:               string(b.Status),
		AdultPrice:           b.AdultPrice,
		ChildPrice:           b.ChildPrice,
		SeniorPrice:          b.SeniorPrice,
		TotalPrice:           b.TotalPrice,
		CreatedBy:            b.CreatedBy,
		CancelledAt:          b.CancelledAt,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
}

// FromDomainMutation собирает ответ на изменение бронирования
func FromDomainMutation(b *domain.Booking, schedule *domain.Schedule) *BookingMutationResponse {
	return &BookingMutationResponse{
		Booking:         *FromDomainBooking(b),
		AvailableSpaces: schedule.AvailableSpaces(),
	}
}

// FromDomainBookingList конвертирует страницу domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, page, limit, total int) *BookingListResponse {
	items := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, *FromDomainBooking(b))
	}

	return &BookingListResponse{
		Items:      items,
		Pagination: types.NewPagination(page, limit, total),
	}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// CommissionReportRequest период отчета, обе даты включительно
type CommissionReportRequest struct {
	DateFrom string
	DateTo   string
}

// ReportPeriod период отчета
type ReportPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CompanyCommissionResponse комиссия одной компании
type CompanyCommissionResponse struct {
	CompanyID       int64   `json:"companyId"`
	CompanyName     string  `json:"companyName"`
	TotalBookings   int     `json:"totalBookings"`
	TotalPeople     int     `json:"totalPeople"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalCommission float64 `json:"totalCommission"`
}

// CommissionReportResponse отчет по комиссиям агентств
type CommissionReportResponse struct {
	Period          ReportPeriod                `json:"period"`
	Companies       []CompanyCommissionResponse `json:"companies"`
	TotalBookings   int                         `json:"totalBookings"`
	TotalRevenue    float64                     `json:"totalRevenue"`
	TotalCommission float64                     `json:"totalCommission"`
}

// FromDomainCommissions собирает отчет и итоги по всем компаниям
func FromDomainCommissions(from, to string, summaries []domain.CommissionSummary) *CommissionReportResponse {
	resp := &CommissionReportResponse{
		Period:    ReportPeriod{Start: from, End: to},
		Companies: make([]CompanyCommissionResponse, 0, len(summaries)),
	}
	for _, s := range summaries {
		resp.Companies = append(resp.Companies, CompanyCommissionResponse{
			CompanyID:       s.CompanyID,
			CompanyName:     s.CompanyName,
			TotalBookings:   s.BookingsCount,
			TotalPeople:     s.PeopleCount,
			TotalRevenue:    s.Revenue,
			TotalCommission: s.Commission,
		})
		resp.TotalBookings += s.BookingsCount
		resp.TotalRevenue = domain.RoundMoney(resp.TotalRevenue + s.Revenue)
		resp.TotalCommission = domain.RoundMoney(resp.TotalCommission + s.Commission)
	}
	return resp
}
