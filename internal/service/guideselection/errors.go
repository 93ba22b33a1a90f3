package guideselection

import (
	"errors"
	"fmt"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

var (
	// ErrNoGuidesAvailable возвращается, когда свободных гидов не хватает на группу
	ErrNoGuidesAvailable = fmt.Errorf("guideselection: %w", domain.ErrNoGuidesAvailable)

	// ErrScheduleNotFound возвращается, когда проведение не найдено
	ErrScheduleNotFound = errors.New("guideselection: schedule not found")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("guideselection: internal error")
)
