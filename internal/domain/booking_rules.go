package domain

import (
	"fmt"
	"strings"
)

// Правила реестра бронирований, общие для создания и изменения.
// Все функции чистые и возвращают ErrInvalidBooking либо типизированные ошибки.

// NormalizeCustomerName обрезает пробелы и проверяет, что имя клиента задано
func NormalizeCustomerName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: customerName is required", ErrInvalidBooking)
	}
	if len([]rune(trimmed)) > MaxCustomerNameLength {
		return "", fmt.Errorf("%w: customerName must be at most %d characters", ErrInvalidBooking, MaxCustomerNameLength)
	}
	return trimmed, nil
}

// ValidatePartySize проверяет, что numberOfPeople положительно
func ValidatePartySize(numberOfPeople int) error {
	if numberOfPeople <= 0 {
		return fmt.Errorf("%w: numberOfPeople must be a positive integer", ErrInvalidBooking)
	}
	return nil
}

// ValidateCounts проверяет категории: каждая не меньше нуля, сумма строго равна numberOfPeople
func ValidateCounts(counts PartyCounts, numberOfPeople int) error {
	if counts.HasNegative() {
		return fmt.Errorf("%w: adultCount, childCount and seniorCount must be non-negative", ErrInvalidBooking)
	}
	if sum := counts.Sum(); sum != numberOfPeople {
		return &CountMismatchError{Sum: sum, Total: numberOfPeople}
	}
	return nil
}

// ResolvePassengerCount применяет правило трансфера
// Без трансфера количество пассажиров не хранится
func ResolvePassengerCount(transport bool, passengerCount *int) (*int, error) {
	if !transport {
		return nil, nil
	}
	if passengerCount == nil {
		return nil, fmt.Errorf("%w: passengerCount is required when transport is enabled", ErrInvalidBooking)
	}
	if *passengerCount < 1 {
		return nil, fmt.Errorf("%w: passengerCount must be at least 1", ErrInvalidBooking)
	}
	value := *passengerCount
	return &value, nil
}

// ResolveCommission выбирает комиссию: явно переданную или процент компании по умолчанию
func ResolveCommission(explicit *float64, companyDefault float64) (float64, error) {
	value := companyDefault
	if explicit != nil {
		value = *explicit
	}
	if value < MinCommissionPercentage || value > MaxCommissionPercentage {
		return 0, fmt.Errorf("%w: commissionPercentage must be between %d and %d",
			ErrInvalidBooking, MinCommissionPercentage, MaxCommissionPercentage)
	}
	return value, nil
}

// ParseWritableStatus разбирает статус, допустимый при создании и изменении
// Отмена выполняется отдельной операцией
func ParseWritableStatus(status *string, fallback BookingStatus) (BookingStatus, error) {
	if status == nil {
		return fallback, nil
	}
	s := BookingStatus(*status)
	switch s {
	case StatusPending, StatusConfirmed:
		return s, nil
	case StatusCancelled:
		return "", fmt.Errorf("%w: status cancelled can only be set by cancelling the booking", ErrInvalidBooking)
	default:
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidBooking, *status)
	}
}
