package companies

import (
	"context"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

// CompanyRepository интерфейс репозитория компаний
type CompanyRepository interface {
	List(ctx context.Context, filter domain.CompaniesFilter) ([]*domain.Company, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	Create(ctx context.Context, c *domain.Company) (*domain.Company, error)
	Update(ctx context.Context, c *domain.Company) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
