package settings

import "errors"

var (
	// ErrSettingNotFound возвращается, когда настройка не найдена
	ErrSettingNotFound = errors.New("setting not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
