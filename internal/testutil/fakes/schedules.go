package fakes

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/schedule"
)

// ScheduleRepo in-memory репозиторий проведений
type ScheduleRepo struct {
	db *DB
}

func NewScheduleRepo(db *DB) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

func (r *ScheduleRepo) Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s.ID = r.db.id()
	s.CreatedAt, s.UpdatedAt = r.db.now, r.db.now
	r.db.schedules[s.ID] = *s
	s.ActivityTitle = r.db.activities[s.ActivityID].Title
	return s, nil
}

func (r *ScheduleRepo) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.schedules[id]; !ok {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return r.load(id), nil
}

func (r *ScheduleRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Schedule, error) {
	return r.GetByID(ctx, id)
}

func (r *ScheduleRepo) List(ctx context.Context, filter domain.SchedulesFilter) ([]*domain.Schedule, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	result := make([]*domain.Schedule, 0)
	for id, s := range r.db.schedules {
		if filter.ActivityID != nil && s.ActivityID != *filter.ActivityID {
			continue
		}
		if filter.From != nil && s.ScheduledStart.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !s.ScheduledStart.Before(*filter.To) {
			continue
		}
		if filter.OnlyActive && !s.IsActive {
			continue
		}
		result = append(result, r.load(id))
	}
	sortSchedules(result)
	return result, nil
}

func (r *ScheduleRepo) FindOverlapping(ctx context.Context, activityID int64, start, end time.Time, excludeID *int64) ([]*domain.Schedule, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	result := make([]*domain.Schedule, 0)
	for id, s := range r.db.schedules {
		if s.ActivityID != activityID || !s.IsActive {
			continue
		}
		if excludeID != nil && id == *excludeID {
			continue
		}
		if s.Overlaps(start, end) {
			result = append(result, r.load(id))
		}
	}
	sortSchedules(result)
	return result, nil
}

func (r *ScheduleRepo) LockByActivity(ctx context.Context, activityID int64) error {
	return nil
}

// AdjustBookedCount применяет delta только если результат остается в [0, capacity]
func (r *ScheduleRepo) AdjustBookedCount(ctx context.Context, id int64, delta int) (*domain.Schedule, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.schedules[id]
	if !ok {
		return nil, scheduleRepo.ErrNotEnoughCapacity
	}
	next := s.BookedCount + delta
	if next > s.Capacity || next < 0 {
		return nil, scheduleRepo.ErrNotEnoughCapacity
	}
	s.BookedCount = next
	r.db.schedules[id] = s
	return &domain.Schedule{ID: id, Capacity: s.Capacity, BookedCount: s.BookedCount, UpdatedAt: s.UpdatedAt}, nil
}

func (r *ScheduleRepo) Update(ctx context.Context, s *domain.Schedule) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	stored, ok := r.db.schedules[s.ID]
	if !ok {
		return scheduleRepo.ErrScheduleNotFound
	}
	if s.Capacity < stored.BookedCount {
		return scheduleRepo.ErrNotEnoughCapacity
	}
	updated := *s
	updated.BookedCount = stored.BookedCount
	updated.ActivityTitle = ""
	r.db.schedules[s.ID] = updated
	s.BookedCount = stored.BookedCount
	return nil
}

func (r *ScheduleRepo) UpdateStatus(ctx context.Context, id int64, isActive bool) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.schedules[id]
	if !ok {
		return scheduleRepo.ErrScheduleNotFound
	}
	s.IsActive = isActive
	r.db.schedules[id] = s
	return nil
}

func (r *ScheduleRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.schedules[id]; !ok {
		return scheduleRepo.ErrScheduleNotFound
	}
	r.db.deleteSchedule(id)
	return nil
}

// load собирает проведение с названием активности, вызывается под mu
func (r *ScheduleRepo) load(id int64) *domain.Schedule {
	s := r.db.schedules[id]
	s.ActivityTitle = r.db.activities[s.ActivityID].Title
	return &s
}

func sortSchedules(list []*domain.Schedule) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].ScheduledStart.Equal(list[j].ScheduledStart) {
			return list[i].ID < list[j].ID
		}
		return list[i].ScheduledStart.Before(list[j].ScheduledStart)
	})
}
