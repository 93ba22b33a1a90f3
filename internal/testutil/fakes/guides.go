package fakes

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	guideRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/guide"
)

// GuideRepo in-memory репозиторий гидов и назначений
type GuideRepo struct {
	db *DB
}

func NewGuideRepo(db *DB) *GuideRepo {
	return &GuideRepo{db: db}
}

func (r *GuideRepo) List(ctx context.Context, filter domain.GuidesFilter) ([]*domain.Guide, int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	all := make([]*domain.Guide, 0)
	for _, g := range r.db.guides {
		g := g
		if filter.Status != nil && g.IsActive != *filter.Status {
			continue
		}
		all = append(all, &g)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	return paginate(all, filter.Page, filter.Limit), len(all), nil
}

func (r *GuideRepo) GetByID(ctx context.Context, id int64) (*domain.Guide, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	g, ok := r.db.guides[id]
	if !ok {
		return nil, guideRepo.ErrGuideNotFound
	}
	return &g, nil
}

func (r *GuideRepo) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Guide, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	result := make([]*domain.Guide, 0, len(ids))
	seen := map[int64]bool{}
	for _, id := range ids {
		if g, ok := r.db.guides[id]; ok && !seen[id] {
			seen[id] = true
			result = append(result, &g)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *GuideRepo) ListAvailable(ctx context.Context, start, end time.Time, excludeScheduleID int64) ([]*domain.Guide, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	busy := map[int64]bool{}
	for sid, list := range r.db.assignments {
		s, ok := r.db.schedules[sid]
		if !ok || sid == excludeScheduleID || !s.IsActive || !s.Overlaps(start, end) {
			continue
		}
		for _, a := range list {
			busy[a.GuideID] = true
		}
	}

	result := make([]*domain.Guide, 0)
	for _, g := range r.db.guides {
		g := g
		if g.IsActive && !busy[g.ID] {
			result = append(result, &g)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		ci, cj := result[i].MaxPartySize, result[j].MaxPartySize
		switch {
		case ci == nil && cj == nil:
			return result[i].ID < result[j].ID
		case ci == nil:
			return false
		case cj == nil:
			return true
		case *ci == *cj:
			return result[i].ID < result[j].ID
		default:
			return *ci > *cj
		}
	})
	return result, nil
}

func (r *GuideRepo) Create(ctx context.Context, g *domain.Guide) (*domain.Guide, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	g.ID = r.db.id()
	r.db.guides[g.ID] = *g
	return g, nil
}

func (r *GuideRepo) Update(ctx context.Context, g *domain.Guide) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	stored, ok := r.db.guides[g.ID]
	if !ok {
		return guideRepo.ErrGuideNotFound
	}
	updated := *g
	updated.LanguageIDs = stored.LanguageIDs
	r.db.guides[g.ID] = updated
	return nil
}

func (r *GuideRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.guides[id]; !ok {
		return guideRepo.ErrGuideNotFound
	}
	delete(r.db.guides, id)
	for sid, list := range r.db.assignments {
		kept := list[:0]
		for _, a := range list {
			if a.GuideID != id {
				kept = append(kept, a)
			}
		}
		r.db.assignments[sid] = kept
	}
	return nil
}

func (r *GuideRepo) ListLanguages(ctx context.Context, onlyActive bool) ([]*domain.Language, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	result := make([]*domain.Language, 0)
	for _, l := range r.db.languages {
		l := l
		if onlyActive && !l.IsActive {
			continue
		}
		result = append(result, &l)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *GuideRepo) SetLanguages(ctx context.Context, guideID int64, languageIDs []int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	g, ok := r.db.guides[guideID]
	if !ok {
		return guideRepo.ErrGuideNotFound
	}
	for _, id := range languageIDs {
		if _, ok := r.db.languages[id]; !ok {
			return guideRepo.ErrLanguageNotFound
		}
	}
	g.LanguageIDs = append([]int64{}, languageIDs...)
	r.db.guides[guideID] = g
	return nil
}

func (r *GuideRepo) ListAssignments(ctx context.Context, scheduleID int64) ([]domain.Assignment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	result := make([]domain.Assignment, 0)
	for _, a := range r.db.assignments[scheduleID] {
		a.GuideName = r.db.guides[a.GuideID].Name
		result = append(result, a)
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].IsLeader && !result[j].IsLeader })
	return result, nil
}

func (r *GuideRepo) ReplaceAssignments(ctx context.Context, scheduleID int64, assignments []domain.Assignment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if domain.LeadersCount(assignments) > 1 {
		return guideRepo.ErrLeaderConflict
	}
	seen := map[int64]bool{}
	stored := make([]domain.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if seen[a.GuideID] {
			return guideRepo.ErrDuplicateAssignment
		}
		if _, ok := r.db.guides[a.GuideID]; !ok {
			return guideRepo.ErrGuideNotFound
		}
		seen[a.GuideID] = true
		a.ScheduleID = scheduleID
		a.AssignedAt = r.db.now
		stored = append(stored, a)
	}
	r.db.assignments[scheduleID] = stored
	return nil
}
