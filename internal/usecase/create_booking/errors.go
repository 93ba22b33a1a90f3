package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrScheduleNotFound возвращается, когда проведение не найдено
	ErrScheduleNotFound = errors.New("create_booking: schedule not found")

	// ErrScheduleInactive возвращается, когда проведение выключено
	ErrScheduleInactive = errors.New("create_booking: schedule is not active")

	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("create_booking: company not found")

	// ErrCapacityExceeded возвращается, когда на проведении не хватает мест
	ErrCapacityExceeded = errors.New("create_booking: capacity exceeded")

	// ErrCountMismatch возвращается, когда сумма по категориям не равна numberOfPeople
	ErrCountMismatch = errors.New("create_booking: count mismatch")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
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
