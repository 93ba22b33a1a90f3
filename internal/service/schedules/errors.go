package schedules

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда проведение не найдено
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrActivityNotFound возвращается, когда активность не найдена
	ErrActivityNotFound = errors.New("activity not found")

	// ErrScheduleOverlap возвращается при пересечении с другим активным проведением активности
	ErrScheduleOverlap = errors.New("schedule overlaps an existing schedule")

	// ErrHasActiveBookings возвращается при удалении проведения с неотмененными бронированиями
	ErrHasActiveBookings = errors.New("schedule has active bookings")

	// ErrCapacityExceeded возвращается при попытке уменьшить вместимость ниже числа занятых мест
	ErrCapacityExceeded = errors.New("capacity below booked count")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
