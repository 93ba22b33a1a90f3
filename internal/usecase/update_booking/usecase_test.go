package update_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/internal/testutil/fakes"
	"github.com/m04kA/TourOps-BookingService/pkg/ptr"
)

type noopMetrics struct{}

func (noopMetrics) BookingMutation(string)  {}
func (noopMetrics) CapacityRejected(string) {}

type fixture struct {
	db       *fakes.DB
	uc       *UseCase
	activity domain.Activity
}

func newFixture() *fixture {
	db := fakes.NewDB()
	tourType := db.AddActivityType(domain.ActivityType{Code: "city", Name: "City tour"})
	activity := db.AddActivity(domain.Activity{
		ActivityTypeID: tourType.ID,
		Title:          "Old town walk",
		PartySize:      10,
		AdultPrice:     50,
		ChildPrice:     25,
		SeniorPrice:    40,
		IsActive:       true,
	})
	uc := NewUseCase(
		fakes.NewBookingRepo(db),
		fakes.NewScheduleRepo(db),
		fakes.NewActivityRepo(db),
		fakes.NewCompanyRepo(db),
		&fakes.TxManager{},
		noopMetrics{},
		fakes.Logger{},
	)
	return &fixture{db: db, uc: uc, activity: activity}
}

func (f *fixture) schedule(hour, capacity, booked int, active bool) domain.Schedule {
	start := time.Date(2026, 6, 1, hour, 0, 0, 0, time.UTC)
	return f.db.AddSchedule(domain.Schedule{
		ActivityID:     f.activity.ID,
		ScheduledStart: start,
		ScheduledEnd:   start.Add(time.Hour),
		Capacity:       capacity,
		BookedCount:    booked,
		IsActive:       active,
	})
}

func (f *fixture) booking(scheduleID int64, people int) domain.Booking {
	b := domain.Booking{
		ActivityScheduleID: scheduleID,
		NumberOfPeople:     people,
		AdultCount:         people,
		CustomerName:       "Maria Lopez",
		Status:             domain.StatusPending,
	}
	b.ApplyPrices(f.activity.Prices())
	return f.db.AddBooking(b)
}

func (f *fixture) booked(t *testing.T, id int64) int {
	s, ok := f.db.Schedule(id)
	require.True(t, ok)
	return s.BookedCount
}

// Изменение A -> B на проведении, где занято только этим бронированием, проходит тогда и только тогда, когда B <= C
func TestExecute_ReconcilesOwnSpaces(t *testing.T) {
	tests := []struct {
		name    string
		from    int
		to      int
		wantErr bool
	}{
		{name: "grow to capacity", from: 4, to: 10},
		{name: "shrink", from: 8, to: 2},
		{name: "same size", from: 10, to: 10},
		{name: "grow over capacity", from: 4, to: 11, wantErr: true},
		{name: "full schedule grows over capacity", from: 10, to: 11, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			s := f.schedule(9, 10, tt.from, true)
			b := f.booking(s.ID, tt.from)

			resp, err := f.uc.Execute(context.Background(), &Request{
				ID:             b.ID,
				NumberOfPeople: ptr.Ptr(tt.to),
				AdultCount:     ptr.Ptr(tt.to),
			})

			if tt.wantErr {
				require.ErrorIs(t, err, ErrCapacityExceeded)
				var capErr *domain.CapacityExceededError
				require.True(t, errors.As(err, &capErr))
				assert.Equal(t, 10, capErr.Available)
				assert.Equal(t, tt.from, f.booked(t, s.ID))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, f.booked(t, s.ID))
			assert.Equal(t, 10-tt.to, resp.AvailableSpaces)
			assert.Equal(t, float64(tt.to)*50, resp.Booking.TotalPrice)
		})
	}
}

func TestExecute_CountsRevalidated(t *testing.T) {
	f := newFixture()
	s := f.schedule(9, 10, 3, true)
	b := f.booking(s.ID, 3)

	_, err := f.uc.Execute(context.Background(), &Request{ID: b.ID, NumberOfPeople: ptr.Ptr(4)})

	require.ErrorIs(t, err, ErrCountMismatch)
	assert.Equal(t, 3, f.booked(t, s.ID))

	resp, err := f.uc.Execute(context.Background(), &Request{
		ID:             b.ID,
		NumberOfPeople: ptr.Ptr(4),
		ChildCount:     ptr.Ptr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 175.0, resp.Booking.TotalPrice)
	assert.Equal(t, 4, f.booked(t, s.ID))
}

func TestExecute_MovesToAnotherSchedule(t *testing.T) {
	f := newFixture()
	from := f.schedule(9, 10, 6, true)
	to := f.schedule(12, 5, 1, true)
	b := f.booking(from.ID, 4)

	resp, err := f.uc.Execute(context.Background(), &Request{ID: b.ID, ActivityScheduleID: ptr.Ptr(to.ID)})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.AvailableSpaces)
	assert.Equal(t, to.ID, resp.Booking.ActivityScheduleID)
	assert.Equal(t, 2, f.booked(t, from.ID))
	assert.Equal(t, 5, f.booked(t, to.ID))
}

func TestExecute_MoveRejected(t *testing.T) {
	f := newFixture()
	from := f.schedule(9, 10, 6, true)
	full := f.schedule(12, 5, 3, true)
	inactive := f.schedule(15, 10, 0, false)
	b := f.booking(from.ID, 4)

	_, err := f.uc.Execute(context.Background(), &Request{ID: b.ID, ActivityScheduleID: ptr.Ptr(full.ID)})
	require.ErrorIs(t, err, ErrCapacityExceeded)
	var capErr *domain.CapacityExceededError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, 2, capErr.Available)

	_, err = f.uc.Execute(context.Background(), &Request{ID: b.ID, ActivityScheduleID: ptr.Ptr(inactive.ID)})
	assert.ErrorIs(t, err, ErrScheduleInactive)

	_, err = f.uc.Execute(context.Background(), &Request{ID: b.ID, ActivityScheduleID: ptr.Ptr(int64(999))})
	assert.ErrorIs(t, err, ErrScheduleNotFound)

	assert.Equal(t, 6, f.booked(t, from.ID))
	assert.Equal(t, 3, f.booked(t, full.ID))
}

func TestExecute_StatusAndCancelled(t *testing.T) {
	f := newFixture()
	s := f.schedule(9, 10, 2, true)
	b := f.booking(s.ID, 2)

	resp, err := f.uc.Execute(context.Background(), &Request{ID: b.ID, Status: ptr.Ptr("confirmed")})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, resp.Booking.Status)

	_, err = f.uc.Execute(context.Background(), &Request{ID: b.ID, Status: ptr.Ptr("cancelled")})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	cancelled := f.db.AddBooking(domain.Booking{ActivityScheduleID: s.ID, NumberOfPeople: 1, AdultCount: 1, CustomerName: "X", Status: domain.StatusCancelled})
	_, err = f.uc.Execute(context.Background(), &Request{ID: cancelled.ID, CustomerName: ptr.Ptr("Y")})
	assert.ErrorIs(t, err, ErrBookingCancelled)

	_, err = f.uc.Execute(context.Background(), &Request{ID: 999})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_TransportAndCompany(t *testing.T) {
	f := newFixture()
	s := f.schedule(9, 10, 2, true)
	b := f.booking(s.ID, 2)
	company := f.db.AddCompany(domain.Company{Name: "Agency", CommissionPercentage: 7, IsActive: true})

	_, err := f.uc.Execute(context.Background(), &Request{ID: b.ID, Transport: ptr.Ptr(true)})
	assert.ErrorIs(t, err, ErrPassengerCountRequired)

	resp, err := f.uc.Execute(context.Background(), &Request{
		ID:             b.ID,
		Transport:      ptr.Ptr(true),
		PassengerCount: ptr.Ptr(2),
		CompanyID:      ptr.Ptr(company.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, *resp.Booking.PassengerCount)
	assert.Equal(t, 7.0, *resp.Booking.CommissionPercentage)

	resp, err = f.uc.Execute(context.Background(), &Request{ID: b.ID, Transport: ptr.Ptr(false)})
	require.NoError(t, err)
	assert.Nil(t, resp.Booking.PassengerCount)
	assert.Equal(t, 7.0, *resp.Booking.CommissionPercentage)

	_, err = f.uc.Execute(context.Background(), &Request{ID: b.ID, CompanyID: ptr.Ptr(int64(999))})
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestExecute_ClearCompany(t *testing.T) {
	f := newFixture()
	s := f.schedule(9, 10, 2, true)
	company := f.db.AddCompany(domain.Company{Name: "Agency", CommissionPercentage: 7, IsActive: true})
	b := f.booking(s.ID, 2)

	resp, err := f.uc.Execute(context.Background(), &Request{ID: b.ID, CompanyID: ptr.Ptr(company.ID)})
	require.NoError(t, err)
	require.NotNil(t, resp.Booking.CompanyID)

	resp, err = f.uc.Execute(context.Background(), &Request{ID: b.ID, ClearCompany: true})
	require.NoError(t, err)
	assert.Nil(t, resp.Booking.CompanyID)
	assert.Nil(t, resp.Booking.CommissionPercentage)

	stored, ok := f.db.Booking(b.ID)
	require.True(t, ok)
	assert.Nil(t, stored.CompanyID)
	assert.Nil(t, stored.CommissionPercentage)
	assert.Equal(t, 2, f.booked(t, s.ID))

	_, err = f.uc.Execute(context.Background(), &Request{ID: b.ID, ClearCompany: true, CompanyID: ptr.Ptr(company.ID)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
