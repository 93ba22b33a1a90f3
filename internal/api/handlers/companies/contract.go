package companies

import (
	"context"

	"github.com/m04kA/TourOps-BookingService/internal/service/companies/models"
)

type CompanyService interface {
	List(ctx context.Context, req *models.ListCompaniesRequest) (*models.CompanyListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.CompanyResponse, error)
	Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.CompanyResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateCompanyRequest) (*models.CompanyResponse, error)
	ToggleStatus(ctx context.Context, id int64) (*models.CompanyResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
