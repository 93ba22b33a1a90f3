package create_booking

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/internal/testutil/fakes"
	"github.com/m04kA/TourOps-BookingService/pkg/ptr"
)

type recordingMetrics struct {
	mu         sync.Mutex
	mutations  int
	rejections int
}

func (m *recordingMetrics) BookingMutation(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mutations++
}

func (m *recordingMetrics) CapacityRejected(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejections++
}

type fixture struct {
	db       *fakes.DB
	uc       *UseCase
	metrics  *recordingMetrics
	activity domain.Activity
	schedule domain.Schedule
}

func newFixture(capacity, booked int) *fixture {
	db := fakes.NewDB()
	tourType := db.AddActivityType(domain.ActivityType{Code: "city", Name: "City tour"})
	activity := db.AddActivity(domain.Activity{
		ActivityTypeID: tourType.ID,
		Title:          "Old town walk",
		PartySize:      capacity,
		AdultPrice:     50,
		ChildPrice:     25,
		SeniorPrice:    40,
		IsActive:       true,
	})
	start := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	schedule := db.AddSchedule(domain.Schedule{
		ActivityID:     activity.ID,
		ScheduledStart: start,
		ScheduledEnd:   start.Add(2 * time.Hour),
		Capacity:       capacity,
		BookedCount:    booked,
		IsActive:       true,
	})
	m := &recordingMetrics{}
	uc := NewUseCase(
		fakes.NewBookingRepo(db),
		fakes.NewScheduleRepo(db),
		fakes.NewActivityRepo(db),
		fakes.NewCompanyRepo(db),
		&fakes.TxManager{},
		m,
		fakes.Logger{},
	)
	return &fixture{db: db, uc: uc, metrics: m, activity: activity, schedule: schedule}
}

func (f *fixture) request(people int) *Request {
	return &Request{
		ActivityScheduleID: f.schedule.ID,
		NumberOfPeople:     people,
		AdultCount:         people,
		CustomerName:       "Maria Lopez",
	}
}

func (f *fixture) bookedCount(t *testing.T) int {
	s, ok := f.db.Schedule(f.schedule.ID)
	require.True(t, ok)
	return s.BookedCount
}

func TestExecute_FillsScheduleThenRejects(t *testing.T) {
	f := newFixture(10, 0)

	resp, err := f.uc.Execute(context.Background(), f.request(10))
	require.NoError(t, err)
	assert.Equal(t, 0, resp.AvailableSpaces)
	assert.Equal(t, domain.StatusPending, resp.Booking.Status)

	_, err = f.uc.Execute(context.Background(), f.request(1))
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
	var capErr *domain.CapacityExceededError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, 1, capErr.Requested)
	assert.Equal(t, 0, capErr.Available)

	assert.Equal(t, 10, f.bookedCount(t))
	assert.Len(t, f.db.Bookings(f.schedule.ID), 1)
	assert.Equal(t, 1, f.metrics.mutations)
	assert.Equal(t, 1, f.metrics.rejections)
}

func TestExecute_CountMismatch(t *testing.T) {
	f := newFixture(10, 0)
	req := f.request(4)
	req.AdultCount, req.ChildCount, req.SeniorCount = 2, 1, 0

	_, err := f.uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrCountMismatch)
	var mismatch *domain.CountMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 3, mismatch.Sum)
	assert.Equal(t, 4, mismatch.Total)
	assert.Equal(t, 0, f.bookedCount(t))
}

func TestExecute_Transport(t *testing.T) {
	tests := []struct {
		name          string
		transport     bool
		passengers    *int
		wantErr       error
		wantPassenger *int
	}{
		{name: "transport without passengers", transport: true, passengers: nil, wantErr: ErrPassengerCountRequired},
		{name: "transport with zero passengers", transport: true, passengers: ptr.Ptr(0), wantErr: ErrPassengerCountRequired},
		{name: "transport with passengers", transport: true, passengers: ptr.Ptr(2), wantPassenger: ptr.Ptr(2)},
		{name: "no transport nulls passengers", transport: false, passengers: ptr.Ptr(5), wantPassenger: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(10, 0)
			req := f.request(2)
			req.Transport = tt.transport
			req.PassengerCount = tt.passengers

			resp, err := f.uc.Execute(context.Background(), req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, f.bookedCount(t))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPassenger, resp.Booking.PassengerCount)
		})
	}
}

func TestExecute_ValidationOrder(t *testing.T) {
	f := newFixture(2, 0)

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{
			name:    "unknown schedule wins over everything",
			mutate:  func(r *Request) { r.ActivityScheduleID = 999; r.CustomerName = "" },
			wantErr: ErrScheduleNotFound,
		},
		{
			name:    "empty name before capacity",
			mutate:  func(r *Request) { r.CustomerName = "   "; r.NumberOfPeople = 50 },
			wantErr: ErrInvalidCustomerName,
		},
		{
			name:    "capacity before count mismatch",
			mutate:  func(r *Request) { r.NumberOfPeople = 5; r.AdultCount = 1 },
			wantErr: ErrCapacityExceeded,
		},
		{
			name:    "non positive people",
			mutate:  func(r *Request) { r.NumberOfPeople = 0; r.AdultCount = 0 },
			wantErr: ErrInvalidPartySize,
		},
		{
			name:    "count mismatch before transport",
			mutate:  func(r *Request) { r.AdultCount = 0; r.Transport = true },
			wantErr: ErrCountMismatch,
		},
		{
			name:    "unknown company",
			mutate:  func(r *Request) { r.CompanyID = ptr.Ptr(int64(999)) },
			wantErr: ErrCompanyNotFound,
		},
		{
			name:    "invalid email",
			mutate:  func(r *Request) { r.CustomerEmail = ptr.Ptr("nope") },
			wantErr: ErrInvalidContacts,
		},
		{
			name:    "cancelled status on create",
			mutate:  func(r *Request) { r.Status = ptr.Ptr("cancelled") },
			wantErr: ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := f.request(1)
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, f.bookedCount(t))
		})
	}
}

func TestExecute_InactiveSchedule(t *testing.T) {
	f := newFixture(10, 0)
	inactive := f.db.AddSchedule(domain.Schedule{
		ActivityID:     f.activity.ID,
		ScheduledStart: f.schedule.ScheduledEnd,
		ScheduledEnd:   f.schedule.ScheduledEnd.Add(time.Hour),
		Capacity:       10,
		IsActive:       false,
	})
	req := f.request(1)
	req.ActivityScheduleID = inactive.ID

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrScheduleInactive)
}

func TestExecute_CompanyCommission(t *testing.T) {
	f := newFixture(10, 0)
	company := f.db.AddCompany(domain.Company{Name: "Agency", CommissionPercentage: 12.5, IsActive: true})

	req := f.request(1)
	req.CompanyID = ptr.Ptr(company.ID)
	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.Booking.CommissionPercentage)
	assert.Equal(t, 12.5, *resp.Booking.CommissionPercentage)

	req = f.request(1)
	req.CompanyID = ptr.Ptr(company.ID)
	req.CommissionPercentage = ptr.Ptr(0.0)
	resp, err = f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0.0, *resp.Booking.CommissionPercentage)

	req = f.request(1)
	req.CompanyID = ptr.Ptr(company.ID)
	req.CommissionPercentage = ptr.Ptr(150.0)
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidCommission)

	req = f.request(1)
	req.CommissionPercentage = ptr.Ptr(20.0)
	resp, err = f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.Booking.CommissionPercentage)
}

func TestExecute_PriceSnapshot(t *testing.T) {
	f := newFixture(10, 0)
	override := f.db.AddSchedule(domain.Schedule{
		ActivityID:     f.activity.ID,
		ScheduledStart: f.schedule.ScheduledEnd,
		ScheduledEnd:   f.schedule.ScheduledEnd.Add(time.Hour),
		Capacity:       10,
		IsActive:       true,
		ChildPrice:     ptr.Ptr(10.0),
	})

	req := f.request(3)
	req.ActivityScheduleID = override.ID
	req.AdultCount, req.ChildCount, req.SeniorCount = 1, 1, 1
	req.Status = ptr.Ptr("confirmed")

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, resp.Booking.Status)
	assert.Equal(t, 50.0, resp.Booking.AdultPrice)
	assert.Equal(t, 10.0, resp.Booking.ChildPrice)
	assert.Equal(t, 40.0, resp.Booking.SeniorPrice)
	assert.Equal(t, 100.0, resp.Booking.TotalPrice)
	assert.Equal(t, "Maria Lopez", resp.Booking.CustomerName)
}

func TestExecute_ConcurrentRequestsNeverOversell(t *testing.T) {
	f := newFixture(10, 0)

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		rejected  atomic.Int32
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Execute(context.Background(), f.request(1))
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, ErrCapacityExceeded):
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(10), succeeded.Load())
	assert.Equal(t, int32(10), rejected.Load())
	assert.Equal(t, 10, f.bookedCount(t))
	assert.Len(t, f.db.Bookings(f.schedule.ID), 10)
}
