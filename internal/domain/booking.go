package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid returns true for known statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// PartyCounts разбивка группы по категориям
type PartyCounts struct {
	Adult  int
	Child  int
	Senior int
}

// Sum возвращает общее количество человек по категориям
func (p PartyCounts) Sum() int {
	return p.Adult + p.Child + p.Senior
}

// HasNegative returns true if any category count is below zero
func (p PartyCounts) HasNegative() bool {
	return p.Adult < 0 || p.Child < 0 || p.Senior < 0
}

// Booking represents a reservation of seats on a schedule
type Booking struct {
	ID                 int64
	ActivityScheduleID int64
	CompanyID          *int64
	Transport          bool
	PassengerCount     *int
	NumberOfPeople     int
	AdultCount         int
	ChildCount         int
	SeniorCount        int

	// Комиссия задается только при наличии компании
	CommissionPercentage *float64

	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string
	Status        BookingStatus

	// Снимок цен на момент бронирования
	AdultPrice  float64
	ChildPrice  float64
	SeniorPrice float64
	TotalPrice  float64

	CreatedBy   *int64
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Counts returns the party breakdown of the booking
func (b *Booking) Counts() PartyCounts {
	return PartyCounts{
		Adult:  b.AdultCount,
		Child:  b.ChildCount,
		Senior: b.SeniorCount,
	}
}

// ApplyPrices сохраняет снимок цен и пересчитывает итоговую стоимость
func (b *Booking) ApplyPrices(prices Prices) {
	b.AdultPrice = prices.Adult
	b.ChildPrice = prices.Child
	b.SeniorPrice = prices.Senior
	b.TotalPrice = CalculateTotal(b.Counts(), prices)
}

// IsActive returns true if the booking occupies seats
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.IsActive()
}

// CanBeUpdated returns true if the booking can be updated
func (b *Booking) CanBeUpdated() bool {
	return b.IsActive()
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BookingsFilter фильтр для списка бронирований
type BookingsFilter struct {
	Status             *BookingStatus // Фильтр по статусу (опционально)
	ActivityScheduleID *int64         // Фильтр по проведению (опционально)
	CompanyID          *int64
	Page               int
	Limit              int
}
