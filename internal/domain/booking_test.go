package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTotal(t *testing.T) {
	prices := Prices{Adult: 50, Child: 25, Senior: 40}

	assert.Equal(t, 165.0, CalculateTotal(PartyCounts{Adult: 2, Child: 1, Senior: 1}, prices))
	assert.Equal(t, 0.0, CalculateTotal(PartyCounts{}, prices))
	assert.Equal(t, 0.3, CalculateTotal(PartyCounts{Adult: 3}, Prices{Adult: 0.1}))
}

func TestBooking_ApplyPrices(t *testing.T) {
	b := &Booking{AdultCount: 1, ChildCount: 2}
	b.ApplyPrices(Prices{Adult: 30, Child: 10, Senior: 20})

	assert.Equal(t, 30.0, b.AdultPrice)
	assert.Equal(t, 10.0, b.ChildPrice)
	assert.Equal(t, 20.0, b.SeniorPrice)
	assert.Equal(t, 50.0, b.TotalPrice)
}

func TestBooking_StatusHelpers(t *testing.T) {
	pending := &Booking{Status: StatusPending}
	assert.True(t, pending.IsActive())
	assert.True(t, pending.CanBeCancelled())
	assert.False(t, pending.IsCancelled())

	cancelled := &Booking{Status: StatusCancelled}
	assert.False(t, cancelled.IsActive())
	assert.False(t, cancelled.CanBeUpdated())
	assert.True(t, cancelled.IsCancelled())

	assert.False(t, BookingStatus("no_show").IsValid())
}

func TestPartyCounts(t *testing.T) {
	c := PartyCounts{Adult: 2, Child: 1, Senior: 1}
	assert.Equal(t, 4, c.Sum())
	assert.False(t, c.HasNegative())
	assert.True(t, PartyCounts{Child: -1}.HasNegative())
}

func TestDomainErrors_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &CapacityExceededError{Requested: 5, Available: 2})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.NotErrorIs(t, err, ErrCountMismatch)

	var capErr *CapacityExceededError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, 2, capErr.Available)

	mismatch := fmt.Errorf("wrapped: %w", &CountMismatchError{Sum: 3, Total: 4})
	assert.ErrorIs(t, mismatch, ErrCountMismatch)
	assert.Contains(t, mismatch.Error(), "numberOfPeople=4")
}
