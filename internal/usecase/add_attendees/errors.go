package add_attendees

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда проведение не найдено
	ErrScheduleNotFound = errors.New("add_attendees: schedule not found")

	// ErrScheduleInactive возвращается, когда проведение выключено
	ErrScheduleInactive = errors.New("add_attendees: schedule is not active")

	// ErrCapacityExceeded возвращается, когда свободных мест не хватает
	ErrCapacityExceeded = errors.New("add_attendees: capacity exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_attendees: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_attendees: internal error")
)
