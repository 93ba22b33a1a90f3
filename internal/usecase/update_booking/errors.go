package update_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrBookingCancelled возвращается при попытке изменить отмененное бронирование
	ErrBookingCancelled = errors.New("update_booking: booking is cancelled")

	// ErrScheduleNotFound возвращается, когда новое проведение не найдено
	ErrScheduleNotFound = errors.New("update_booking: schedule not found")

	// ErrScheduleInactive возвращается при переносе на выключенное проведение
	ErrScheduleInactive = errors.New("update_booking: schedule is not active")

	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("update_booking: company not found")

	// ErrCapacityExceeded возвращается, когда на проведении не хватает мест
	ErrCapacityExceeded = errors.New("update_booking: capacity exceeded")

	// ErrCountMismatch возвращается, когда сумма по категориям не равна numberOfPeople
	ErrCountMismatch = errors.New("update_booking: count mismatch")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)

// Ошибки отдельных шагов проверки, каждая удовлетворяет errors.Is(err, ErrInvalidInput)
var (
	// ErrInvalidCustomerName имя клиента пустое или слишком длинное
	ErrInvalidCustomerName = fmt.Errorf("%w: customer name", ErrInvalidInput)

	// ErrInvalidPartySize numberOfPeople не положительно
	ErrInvalidPartySize = fmt.Errorf("%w: party size", ErrInvalidInput)

	// ErrInvalidCategoryCounts количество по категории отрицательно
	ErrInvalidCategoryCounts = fmt.Errorf("%w: category counts", ErrInvalidInput)

	// ErrPassengerCountRequired при трансфере не задано количество пассажиров или оно меньше 1
	ErrPassengerCountRequired = fmt.Errorf("%w: passenger count", ErrInvalidInput)

	// ErrInvalidCommission комиссия вне диапазона [0, 100]
	ErrInvalidCommission = fmt.Errorf("%w: commission percentage", ErrInvalidInput)

	// ErrInvalidContacts некорректный email или телефон клиента
	ErrInvalidContacts = fmt.Errorf("%w: customer contacts", ErrInvalidInput)

	// ErrInvalidStatus неизвестный статус либо попытка отмены через изменение
	ErrInvalidStatus = fmt.Errorf("%w: status", ErrInvalidInput)
)
