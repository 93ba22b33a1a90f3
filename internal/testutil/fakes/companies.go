package fakes

import (
	"context"
	"sort"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	companyRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/company"
)

// CompanyRepo in-memory репозиторий компаний
type CompanyRepo struct {
	db *DB
}

func NewCompanyRepo(db *DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

func (r *CompanyRepo) List(ctx context.Context, filter domain.CompaniesFilter) ([]*domain.Company, int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	all := make([]*domain.Company, 0)
	for _, c := range r.db.companies {
		c := c
		if filter.Status != nil && c.IsActive != *filter.Status {
			continue
		}
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	return paginate(all, filter.Page, filter.Limit), len(all), nil
}

func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	c, ok := r.db.companies[id]
	if !ok {
		return nil, companyRepo.ErrCompanyNotFound
	}
	return &c, nil
}

func (r *CompanyRepo) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	c.ID = r.db.id()
	r.db.companies[c.ID] = *c
	return c, nil
}

func (r *CompanyRepo) Update(ctx context.Context, c *domain.Company) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.companies[c.ID]; !ok {
		return companyRepo.ErrCompanyNotFound
	}
	r.db.companies[c.ID] = *c
	return nil
}

// Delete удаляет компанию, у бронирований company_id обнуляется
func (r *CompanyRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.companies[id]; !ok {
		return companyRepo.ErrCompanyNotFound
	}
	delete(r.db.companies, id)
	for bid, b := range r.db.bookings {
		if b.CompanyID != nil && *b.CompanyID == id {
			b.CompanyID = nil
			r.db.bookings[bid] = b
		}
	}
	return nil
}
