package fakes

import (
	"context"
	"sort"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	activityRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/activity"
)

// ActivityRepo in-memory репозиторий активностей
type ActivityRepo struct {
	db *DB
}

func NewActivityRepo(db *DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

func (r *ActivityRepo) ListTypes(ctx context.Context) ([]*domain.ActivityType, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	result := make([]*domain.ActivityType, 0, len(r.db.activityTypes))
	for _, t := range r.db.activityTypes {
		t := t
		result = append(result, &t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *ActivityRepo) GetTypeByID(ctx context.Context, id int64) (*domain.ActivityType, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	t, ok := r.db.activityTypes[id]
	if !ok {
		return nil, activityRepo.ErrActivityTypeNotFound
	}
	return &t, nil
}

func (r *ActivityRepo) CreateType(ctx context.Context, t *domain.ActivityType) (*domain.ActivityType, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.activityTypes {
		if existing.Code == t.Code {
			return nil, activityRepo.ErrDuplicateTypeCode
		}
	}
	t.ID = r.db.id()
	r.db.activityTypes[t.ID] = *t
	return t, nil
}

func (r *ActivityRepo) UpdateType(ctx context.Context, t *domain.ActivityType) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.activityTypes[t.ID]; !ok {
		return activityRepo.ErrActivityTypeNotFound
	}
	for _, existing := range r.db.activityTypes {
		if existing.Code == t.Code && existing.ID != t.ID {
			return activityRepo.ErrDuplicateTypeCode
		}
	}
	r.db.activityTypes[t.ID] = *t
	return nil
}

func (r *ActivityRepo) List(ctx context.Context, filter domain.ActivitiesFilter) ([]*domain.Activity, int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	all := make([]*domain.Activity, 0)
	for id := range r.db.activities {
		a := r.load(id)
		if filter.Status != nil && a.IsActive != *filter.Status {
			continue
		}
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Title == all[j].Title {
			return all[i].ID < all[j].ID
		}
		return all[i].Title < all[j].Title
	})

	return paginate(all, filter.Page, filter.Limit), len(all), nil
}

func (r *ActivityRepo) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.activities[id]; !ok {
		return nil, activityRepo.ErrActivityNotFound
	}
	return r.load(id), nil
}

func (r *ActivityRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Activity, error) {
	return r.GetByID(ctx, id)
}

func (r *ActivityRepo) Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.activityTypes[a.ActivityTypeID]; !ok {
		return nil, activityRepo.ErrActivityTypeNotFound
	}
	a.ID = r.db.id()
	a.CreatedAt, a.UpdatedAt = r.db.now, r.db.now
	r.db.activities[a.ID] = *a
	return a, nil
}

func (r *ActivityRepo) Update(ctx context.Context, a *domain.Activity) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.activities[a.ID]; !ok {
		return activityRepo.ErrActivityNotFound
	}
	if _, ok := r.db.activityTypes[a.ActivityTypeID]; !ok {
		return activityRepo.ErrActivityTypeNotFound
	}
	r.db.activities[a.ID] = *a
	return nil
}

func (r *ActivityRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.activities[id]; !ok {
		return activityRepo.ErrActivityNotFound
	}
	delete(r.db.activities, id)
	for sid, s := range r.db.schedules {
		if s.ActivityID == id {
			r.db.deleteSchedule(sid)
		}
	}
	return nil
}

// load собирает активность с денормализованными полями, вызывается под mu
func (r *ActivityRepo) load(id int64) *domain.Activity {
	a := r.db.activities[id]
	a.ActivityTypeName = r.db.activityTypes[a.ActivityTypeID].Name
	a.SchedulesCount = 0
	for _, s := range r.db.schedules {
		if s.ActivityID == id {
			a.SchedulesCount++
		}
	}
	return &a
}

// deleteSchedule каскадно удаляет проведение, вызывается под mu
func (db *DB) deleteSchedule(id int64) {
	delete(db.schedules, id)
	delete(db.assignments, id)
	for bid, b := range db.bookings {
		if b.ActivityScheduleID == id {
			delete(db.bookings, bid)
		}
	}
}
