package bookings

import (
	"errors"
	"fmt"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAlreadyCancelled возвращается при повторной отмене бронирования
	ErrAlreadyCancelled = errors.New("booking already cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// ErrInvalidPeriod возвращается при некорректном периоде отчета
var ErrInvalidPeriod = fmt.Errorf("%w: report period", ErrInvalidInput)
