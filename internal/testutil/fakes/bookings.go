package fakes

import (
	"context"
	"sort"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/booking"
)

// BookingRepo in-memory репозиторий бронирований
type BookingRepo struct {
	db *DB
}

func NewBookingRepo(db *DB) *BookingRepo {
	return &BookingRepo{db: db}
}

func (r *BookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if err := r.db.failNextInsert; err != nil {
		r.db.failNextInsert = nil
		return nil, err
	}
	b.ID = r.db.id()
	b.CreatedAt, b.UpdatedAt = r.db.now, r.db.now
	r.db.bookings[b.ID] = *b
	return b, nil
}

func (r *BookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	b, ok := r.db.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return &b, nil
}

func (r *BookingRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.GetByID(ctx, id)
}

func (r *BookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	all := make([]*domain.Booking, 0)
	for _, b := range r.db.bookings {
		b := b
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.ActivityScheduleID != nil && b.ActivityScheduleID != *filter.ActivityScheduleID {
			continue
		}
		if filter.CompanyID != nil && (b.CompanyID == nil || *b.CompanyID != *filter.CompanyID) {
			continue
		}
		all = append(all, &b)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	return paginate(all, filter.Page, filter.Limit), len(all), nil
}

func (r *BookingRepo) Update(ctx context.Context, b *domain.Booking) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.bookings[b.ID]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	r.db.bookings[b.ID] = *b
	return nil
}

func (r *BookingRepo) Cancel(ctx context.Context, b *domain.Booking) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	stored, ok := r.db.bookings[b.ID]
	if !ok || stored.Status == domain.StatusCancelled {
		return bookingRepo.ErrCannotCancel
	}
	now := r.db.now
	stored.Status = domain.StatusCancelled
	stored.CancelledAt = &now
	r.db.bookings[b.ID] = stored

	b.Status = domain.StatusCancelled
	b.CancelledAt = &now
	return nil
}

func (r *BookingRepo) HasActiveBySchedule(ctx context.Context, scheduleID int64) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, b := range r.db.bookings {
		if b.ActivityScheduleID == scheduleID && b.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (r *BookingRepo) HasActiveByActivity(ctx context.Context, activityID int64) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, b := range r.db.bookings {
		if r.db.schedules[b.ActivityScheduleID].ActivityID == activityID && b.IsActive() {
			return true, nil
		}
	}
	return false, nil
}
