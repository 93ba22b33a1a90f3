package update_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/pkg/validation"
)

// contactFields контакты клиента, проверяются валидатором
type contactFields struct {
	CustomerEmail *string `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone *string `json:"customerPhone" validate:"omitempty,max=50"`
}

// availableFor возвращает места, доступные бронированию на проведении
// На собственном проведении учитываются места, уже занятые этим бронированием
func availableFor(schedule *domain.Schedule, stored *domain.Booking) int {
	available := schedule.AvailableSpaces()
	if schedule.ID == stored.ActivityScheduleID {
		available += stored.NumberOfPeople
	}
	if available > schedule.Capacity {
		available = schedule.Capacity
	}
	return available
}

// validateCapacity шаг 3 с учетом собственных мест бронирования
func validateCapacity(numberOfPeople, available int) error {
	if err := domain.ValidatePartySize(numberOfPeople); err != nil {
		return invalid(ErrInvalidPartySize, err)
	}
	if numberOfPeople > available {
		return fmt.Errorf("%w: %w", ErrCapacityExceeded, &domain.CapacityExceededError{
			Requested: numberOfPeople,
			Available: available,
		})
	}
	return nil
}

// validateCounts шаг 4: категории неотрицательны и в сумме дают numberOfPeople
func validateCounts(b *domain.Booking) error {
	err := domain.ValidateCounts(b.Counts(), b.NumberOfPeople)
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrCountMismatch) {
		return fmt.Errorf("%w: %w", ErrCountMismatch, err)
	}
	return invalid(ErrInvalidCategoryCounts, err)
}

// validateContacts проверяет формат контактов клиента
func validateContacts(b *domain.Booking) error {
	if err := validation.Struct(contactFields{CustomerEmail: b.CustomerEmail, CustomerPhone: b.CustomerPhone}); err != nil {
		return invalid(ErrInvalidContacts, err)
	}
	return nil
}

// invalid оборачивает ошибку доменного правила в ошибку шага проверки
func invalid(step, err error) error {
	return fmt.Errorf("%w: %v", step, err)
}
