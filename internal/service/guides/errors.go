package guides

import "errors"

var (
	// ErrGuideNotFound возвращается, когда гид не найден
	ErrGuideNotFound = errors.New("guide not found")

	// ErrLanguageNotFound возвращается при ссылке на несуществующий язык
	ErrLanguageNotFound = errors.New("language not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
