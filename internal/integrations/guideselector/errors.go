package guideselector

import (
	"errors"
	"fmt"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

var (
	// ErrNoGuidesAvailable возвращается, когда сервис не смог подобрать гидов
	ErrNoGuidesAvailable = fmt.Errorf("guideselector client: %w", domain.ErrNoGuidesAvailable)

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("guideselector client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("guideselector client: invalid response")

	// ErrServiceUnavailable возвращается, когда circuit breaker разомкнут
	ErrServiceUnavailable = errors.New("guideselector client: service unavailable")
)

// statusError ответ сервиса с кодом 4xx, не считается отказом для circuit breaker
type statusError struct {
	StatusCode int
	Body       string
}

func (e *statusError) Error() string {
	return e.Body
}
