package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrCountMismatch    = errors.New("count mismatch")
	ErrInvalidBooking   = errors.New("invalid booking")
)

// CapacityExceededError запрошено больше мест, чем свободно
type CapacityExceededError struct {
	Requested int
	Available int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("requested %d spaces, only %d available", e.Requested, e.Available)
}

func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// CountMismatchError сумма по категориям не совпадает с numberOfPeople
type CountMismatchError struct {
	Sum   int
	Total int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("adult+child+senior=%d does not match numberOfPeople=%d", e.Sum, e.Total)
}

func (e *CountMismatchError) Is(target error) bool {
	return target == ErrCountMismatch
}
