package domain

import "time"

// Company партнерская компания, приводящая клиентов за комиссию
type Company struct {
	ID                   int64
	Name                 string
	CommissionPercentage float64
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// CompaniesFilter фильтр списка компаний
type CompaniesFilter struct {
	Status *bool
	Page   int
	Limit  int
}
