package create_booking

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

// validateSchedule шаг 1: проведение существует и активно
func validateSchedule(schedule *domain.Schedule) error {
	if !schedule.IsActive {
		return ErrScheduleInactive
	}
	return nil
}

// validateCapacity шаг 3: группа положительна и помещается в свободные места
func validateCapacity(schedule *domain.Schedule, numberOfPeople int) error {
	if err := domain.ValidatePartySize(numberOfPeople); err != nil {
		return invalid(ErrInvalidPartySize, err)
	}
	if !schedule.CanHost(numberOfPeople) {
		return fmt.Errorf("%w: %w", ErrCapacityExceeded, &domain.CapacityExceededError{
			Requested: numberOfPeople,
			Available: schedule.AvailableSpaces(),
		})
	}
	return nil
}

// validateCounts шаг 4: категории неотрицательны и в сумме дают numberOfPeople
func validateCounts(counts domain.PartyCounts, numberOfPeople int) error {
	err := domain.ValidateCounts(counts, numberOfPeople)
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrCountMismatch) {
		return fmt.Errorf("%w: %w", ErrCountMismatch, err)
	}
	return invalid(ErrInvalidCategoryCounts, err)
}

// validateContacts проверяет формат контактов клиента
func validateContacts(req *Request) error {
	if err := validation.Struct(contactFields{CustomerEmail: req.CustomerEmail, CustomerPhone: req.CustomerPhone}); err != nil {
		return invalid(ErrInvalidContacts, err)
	}
	return nil
}

// invalid оборачивает ошибку доменного правила в ошибку шага проверки
func invalid(step, err error) error {
	return fmt.Errorf("%w: %v", step, err)
}
