package fakes

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

func (r *BookingRepo) CommissionsByPeriod(ctx context.Context, from, to time.Time) ([]domain.CommissionSummary, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	byCompany := map[int64]*domain.CommissionSummary{}
	for _, b := range r.db.bookings {
		b := b
		if b.CompanyID == nil || !b.IsActive() {
			continue
		}
		s, ok := r.db.schedules[b.ActivityScheduleID]
		if !ok || s.ScheduledStart.Before(from) || !s.ScheduledStart.Before(to) {
			continue
		}
		company, ok := r.db.companies[*b.CompanyID]
		if !ok {
			continue
		}
		sum, ok := byCompany[company.ID]
		if !ok {
			sum = &domain.CommissionSummary{CompanyID: company.ID, CompanyName: company.Name}
			byCompany[company.ID] = sum
		}
		sum.BookingsCount++
		sum.PeopleCount += b.NumberOfPeople
		sum.Revenue = domain.RoundMoney(sum.Revenue + b.TotalPrice)
		sum.Commission = domain.RoundMoney(sum.Commission + b.Commission())
	}

	result := make([]domain.CommissionSummary, 0, len(byCompany))
	for _, sum := range byCompany {
		result = append(result, *sum)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CompanyName == result[j].CompanyName {
			return result[i].CompanyID < result[j].CompanyID
		}
		return result[i].CompanyName < result[j].CompanyName
	})
	return result, nil
}

func (r *GuideRepo) ListLoad(ctx context.Context, start, end time.Time) ([]domain.GuideLoad, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	loads := map[int64]*domain.GuideLoad{}
	for _, g := range r.db.guides {
		if g.IsActive {
			loads[g.ID] = &domain.GuideLoad{Guide: domain.Guide{ID: g.ID, Name: g.Name, MaxPartySize: g.MaxPartySize, IsActive: true}}
		}
	}
	for sid, list := range r.db.assignments {
		s, ok := r.db.schedules[sid]
		if !ok || !s.IsActive || !s.Overlaps(start, end) {
			continue
		}
		for _, a := range list {
			l, ok := loads[a.GuideID]
			if !ok {
				continue
			}
			l.Assignments++
			if a.IsLeader {
				l.Leading++
			}
		}
	}

	result := make([]domain.GuideLoad, 0, len(loads))
	for _, l := range loads {
		result = append(result, *l)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Guide.Name == result[j].Guide.Name {
			return result[i].Guide.ID < result[j].Guide.ID
		}
		return result[i].Guide.Name < result[j].Guide.Name
	})
	return result, nil
}
