package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/TourOps-BookingService/pkg/ptr"
)

func TestSchedule_AvailableSpaces(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		booked   int
		want     int
	}{
		{name: "empty", capacity: 10, booked: 0, want: 10},
		{name: "partially booked", capacity: 10, booked: 7, want: 3},
		{name: "full", capacity: 10, booked: 10, want: 0},
		{name: "zero capacity", capacity: 0, booked: 0, want: 0},
		{name: "over capacity never negative", capacity: 5, booked: 8, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Schedule{Capacity: tt.capacity, BookedCount: tt.booked}
			assert.Equal(t, tt.want, s.AvailableSpaces())
		})
	}
}

func TestSchedule_Overlaps(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := &Schedule{
		ScheduledStart: day.Add(9 * time.Hour),
		ScheduledEnd:   day.Add(11 * time.Hour),
	}

	tests := []struct {
		name  string
		start time.Duration
		end   time.Duration
		want  bool
	}{
		{name: "same interval", start: 9 * time.Hour, end: 11 * time.Hour, want: true},
		{name: "starts inside", start: 10 * time.Hour, end: 12 * time.Hour, want: true},
		{name: "contains", start: 8 * time.Hour, end: 12 * time.Hour, want: true},
		{name: "touches end", start: 11 * time.Hour, end: 12 * time.Hour, want: false},
		{name: "touches start", start: 8 * time.Hour, end: 9 * time.Hour, want: false},
		{name: "disjoint", start: 13 * time.Hour, end: 14 * time.Hour, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Overlaps(day.Add(tt.start), day.Add(tt.end)))
		})
	}
}

func TestSchedule_EffectivePrices(t *testing.T) {
	base := Prices{Adult: 50, Child: 25, Senior: 40}

	s := &Schedule{ChildPrice: ptr.Ptr(0.0)}
	assert.Equal(t, Prices{Adult: 50, Child: 0, Senior: 40}, s.EffectivePrices(base))

	s = &Schedule{}
	assert.Equal(t, base, s.EffectivePrices(base))
}

func TestAvailability_OccupancyRate(t *testing.T) {
	a := NewAvailability(&Schedule{ID: 1, Capacity: 20, BookedCount: 5})
	assert.Equal(t, 15, a.AvailableSpaces)
	assert.InDelta(t, 25.0, a.OccupancyRate(), 0.001)
	assert.False(t, a.IsFull())

	full := NewAvailability(&Schedule{Capacity: 0})
	assert.True(t, full.IsFull())
	assert.Zero(t, full.OccupancyRate())
}
