package activities

import "errors"

var (
	// ErrActivityNotFound возвращается, когда активность не найдена
	ErrActivityNotFound = errors.New("activity not found")

	// ErrActivityTypeNotFound возвращается, когда тип активности не найден
	ErrActivityTypeNotFound = errors.New("activity type not found")

	// ErrDuplicateTypeCode возвращается при повторном коде типа активности
	ErrDuplicateTypeCode = errors.New("activity type code already exists")

	// ErrHasActiveBookings возвращается при удалении активности с действующими бронированиями
	ErrHasActiveBookings = errors.New("activity has active bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
