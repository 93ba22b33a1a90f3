package models

import (
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/pkg/types"
)

// CreateCompanyRequest запрос на создание компании
type CreateCompanyRequest struct {
	Name                 string  `json:"name" validate:"required,max=200"`
	CommissionPercentage float64 `json:"commissionPercentage" validate:"gte=0,lte=100"`
	Status               *bool   `json:"status,omitempty"`
}

// UpdateCompanyRequest частичное обновление компании
type UpdateCompanyRequest struct {
	Name                 *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	CommissionPercentage *float64 `json:"commissionPercentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	Status               *bool    `json:"status,omitempty"`
}

// ListCompaniesRequest параметры списка компаний
type ListCompaniesRequest struct {
	Status *bool
	Page   int
	Limit  int
}

// CompanyResponse компания
type CompanyResponse struct {
	ID                   int64     `json:"id"`
	Name                 string    `json:"name"`
	CommissionPercentage float64   `json:"commissionPercentage"`
	Status               bool      `json:"status"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// CompanyListResponse страница компаний
type CompanyListResponse struct {
	Items      []CompanyResponse `json:"items"`
	Pagination types.Pagination  `json:"pagination"`
}

// ApplyTo накладывает переданные поля на компанию
func (r *UpdateCompanyRequest) ApplyTo(c *domain.Company) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.CommissionPercentage != nil {
		c.CommissionPercentage = *r.CommissionPercentage
	}
	if r.Status != nil {
		c.IsActive = *r.Status
	}
}

// FromDomainCompany конвертирует компанию в ответ
func FromDomainCompany(c *domain.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:                   c.ID,
		Name:                 c.Name,
		CommissionPercentage: c.CommissionPercentage,
		Status:               c.IsActive,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

// FromDomainCompanyList собирает страницу компаний
func FromDomainCompanyList(list []*domain.Company, page, limit, total int) *CompanyListResponse {
	items := make([]CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *FromDomainCompany(c))
	}
	return &CompanyListResponse{Items: items, Pagination: types.NewPagination(page, limit, total)}
}
