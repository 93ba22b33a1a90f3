package add_attendees

import "github.com/m04kA/TourOps-BookingService/internal/domain"

// Request модель запроса на добавление участников без бронирования
type Request struct {
	ScheduleID int64
	Quantity   int
}

// Response модель ответа с обновленным проведением
type Response struct {
	Schedule        *domain.Schedule
	AvailableSpaces int
}
