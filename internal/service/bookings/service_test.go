package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/internal/service/bookings/models"
	"github.com/m04kA/TourOps-BookingService/internal/testutil/fakes"
	"github.com/m04kA/TourOps-BookingService/pkg/ptr"
)

type countingMetrics struct {
	ops []string
}

func (m *countingMetrics) BookingMutation(operation string) {
	m.ops = append(m.ops, operation)
}

func seedSchedule(db *fakes.DB, capacity, booked int) domain.Schedule {
	start := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	return db.AddSchedule(domain.Schedule{
		ActivityID:     1,
		ScheduledStart: start,
		ScheduledEnd:   start.Add(2 * time.Hour),
		Capacity:       capacity,
		BookedCount:    booked,
		IsActive:       true,
	})
}

func TestService_Cancel_ReleasesSpacesOnce(t *testing.T) {
	db := fakes.NewDB()
	schedule := seedSchedule(db, 10, 7)
	booking := db.AddBooking(domain.Booking{
		ActivityScheduleID: schedule.ID,
		NumberOfPeople:     3,
		AdultCount:         3,
		CustomerName:       "Ivan",
		Status:             domain.StatusConfirmed,
	})
	m := &countingMetrics{}
	svc := NewService(fakes.NewBookingRepo(db), fakes.NewScheduleRepo(db), &fakes.TxManager{}, m, time.UTC, fakes.Logger{})

	resp, err := svc.Cancel(context.Background(), booking.ID)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Booking.Status)
	assert.NotNil(t, resp.Booking.CancelledAt)
	assert.Equal(t, 6, resp.AvailableSpaces)

	_, err = svc.Cancel(context.Background(), booking.ID)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)

	stored, _ := db.Schedule(schedule.ID)
	assert.Equal(t, 4, stored.BookedCount)
	assert.Equal(t, []string{"cancel"}, m.ops)
}

func TestService_Cancel_NotFound(t *testing.T) {
	db := fakes.NewDB()
	svc := NewService(fakes.NewBookingRepo(db), fakes.NewScheduleRepo(db), &fakes.TxManager{}, &countingMetrics{}, time.UTC, fakes.Logger{})

	_, err := svc.Cancel(context.Background(), 42)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_List(t *testing.T) {
	db := fakes.NewDB()
	schedule := seedSchedule(db, 10, 0)
	other := seedSchedule(db, 10, 0)
	db.AddBooking(domain.Booking{ActivityScheduleID: schedule.ID, NumberOfPeople: 1, AdultCount: 1, Status: domain.StatusPending})
	db.AddBooking(domain.Booking{ActivityScheduleID: schedule.ID, NumberOfPeople: 1, AdultCount: 1, Status: domain.StatusCancelled})
	db.AddBooking(domain.Booking{ActivityScheduleID: other.ID, NumberOfPeople: 1, AdultCount: 1, Status: domain.StatusPending})
	svc := NewService(fakes.NewBookingRepo(db), fakes.NewScheduleRepo(db), &fakes.TxManager{}, &countingMetrics{}, time.UTC, fakes.Logger{})

	tests := []struct {
		name  string
		req   models.ListBookingsRequest
		count int
	}{
		{name: "all", req: models.ListBookingsRequest{}, count: 3},
		{name: "by status", req: models.ListBookingsRequest{Status: ptr.Ptr("pending")}, count: 2},
		{name: "by schedule", req: models.ListBookingsRequest{ActivityScheduleID: ptr.Ptr(schedule.ID)}, count: 2},
		{name: "page size", req: models.ListBookingsRequest{Limit: 1, Page: 2}, count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.List(context.Background(), &tt.req)
			require.NoError(t, err)
			assert.Len(t, resp.Items, tt.count)
		})
	}

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("lost")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_CommissionReport(t *testing.T) {
	db := fakes.NewDB()
	june := seedSchedule(db, 20, 0)
	july := db.AddSchedule(domain.Schedule{
		ActivityID:     1,
		ScheduledStart: time.Date(2026, 7, 3, 9, 0, 0, 0, time.UTC),
		ScheduledEnd:   time.Date(2026, 7, 3, 11, 0, 0, 0, time.UTC),
		Capacity:       20,
		IsActive:       true,
	})
	sunrise := db.AddCompany(domain.Company{Name: "Sunrise Travel", CommissionPercentage: 10, IsActive: true})
	andes := db.AddCompany(domain.Company{Name: "Andes Tours", CommissionPercentage: 12.5, IsActive: true})

	book := func(scheduleID int64, companyID *int64, rate *float64, people int, total float64, status domain.BookingStatus) {
		db.AddBooking(domain.Booking{
			ActivityScheduleID:   scheduleID,
			CompanyID:            companyID,
			CommissionPercentage: rate,
			NumberOfPeople:       people,
			AdultCount:           people,
			CustomerName:         "Guest",
			TotalPrice:           total,
			Status:               status,
		})
	}
	book(june.ID, ptr.Ptr(sunrise.ID), ptr.Ptr(10.0), 3, 200, domain.StatusConfirmed)
	book(june.ID, ptr.Ptr(sunrise.ID), ptr.Ptr(10.0), 2, 150, domain.StatusPending)
	book(june.ID, ptr.Ptr(sunrise.ID), ptr.Ptr(10.0), 1, 100, domain.StatusCancelled)
	book(june.ID, ptr.Ptr(andes.ID), ptr.Ptr(12.5), 2, 99.99, domain.StatusConfirmed)
	book(july.ID, ptr.Ptr(andes.ID), ptr.Ptr(12.5), 4, 500, domain.StatusConfirmed)
	book(june.ID, nil, nil, 1, 80, domain.StatusConfirmed)

	svc := NewService(fakes.NewBookingRepo(db), fakes.NewScheduleRepo(db), &fakes.TxManager{}, &countingMetrics{}, time.UTC, fakes.Logger{})

	resp, err := svc.CommissionReport(context.Background(), &models.CommissionReportRequest{DateFrom: "2026-06-01", DateTo: "2026-06-01"})

	require.NoError(t, err)
	assert.Equal(t, models.ReportPeriod{Start: "2026-06-01", End: "2026-06-01"}, resp.Period)
	require.Len(t, resp.Companies, 2)

	assert.Equal(t, "Andes Tours", resp.Companies[0].CompanyName)
	assert.Equal(t, 1, resp.Companies[0].TotalBookings)
	assert.Equal(t, 2, resp.Companies[0].TotalPeople)
	assert.InDelta(t, 12.5, resp.Companies[0].TotalCommission, 0.001)

	assert.Equal(t, sunrise.ID, resp.Companies[1].CompanyID)
	assert.Equal(t, 2, resp.Companies[1].TotalBookings)
	assert.Equal(t, 5, resp.Companies[1].TotalPeople)
	assert.InDelta(t, 350.0, resp.Companies[1].TotalRevenue, 0.001)
	assert.InDelta(t, 35.0, resp.Companies[1].TotalCommission, 0.001)

	assert.Equal(t, 3, resp.TotalBookings)
	assert.InDelta(t, 449.99, resp.TotalRevenue, 0.001)
	assert.InDelta(t, 47.5, resp.TotalCommission, 0.001)

	resp, err = svc.CommissionReport(context.Background(), &models.CommissionReportRequest{DateFrom: "2026-06-01", DateTo: "2026-07-31"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Companies[0].TotalBookings)
	assert.Equal(t, 4, resp.TotalBookings)
}

func TestService_CommissionReport_InvalidPeriod(t *testing.T) {
	svc := NewService(fakes.NewBookingRepo(fakes.NewDB()), fakes.NewScheduleRepo(fakes.NewDB()), &fakes.TxManager{}, &countingMetrics{}, time.UTC, fakes.Logger{})

	tests := []struct {
		name     string
		from, to string
	}{
		{name: "missing from", to: "2026-06-01"},
		{name: "bad format", from: "01.06.2026", to: "2026-06-30"},
		{name: "reversed", from: "2026-06-30", to: "2026-06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CommissionReport(context.Background(), &models.CommissionReportRequest{DateFrom: tt.from, DateTo: tt.to})
			assert.ErrorIs(t, err, ErrInvalidPeriod)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
