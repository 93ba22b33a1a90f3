package bulk_create_schedules

import (
	"errors"
	"fmt"
)

var (
	// ErrActivityNotFound возвращается, когда активность не найдена
	ErrActivityNotFound = errors.New("bulk_create_schedules: activity not found")

	// ErrInvalidInput возвращается при некорректном запросе, ни одно проведение при этом не создается
	ErrInvalidInput = errors.New("bulk_create_schedules: invalid input data")

	// ErrRangeTooLong возвращается, когда диапазон дат длиннее настройки schedules.bulk_max_days
	ErrRangeTooLong = errors.New("bulk_create_schedules: date range is too long")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("bulk_create_schedules: internal error")
)

// Ошибки отдельных проверок запроса, каждая удовлетворяет errors.Is(err, ErrInvalidInput)
var (
	// ErrInvalidDates даты не в формате YYYY-MM-DD либо startDate позже endDate
	ErrInvalidDates = fmt.Errorf("%w: date range", ErrInvalidInput)

	// ErrNoTimeSlots не передано ни одного слота
	ErrNoTimeSlots = fmt.Errorf("%w: no time slots", ErrInvalidInput)

	// ErrInvalidTimeSlot слот с некорректным временем или вместимостью
	ErrInvalidTimeSlot = fmt.Errorf("%w: time slot", ErrInvalidInput)
)
