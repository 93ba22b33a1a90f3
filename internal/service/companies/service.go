package companies

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	companyRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/company"
	"github.com/m04kA/TourOps-BookingService/internal/service/companies/models"
	"github.com/m04kA/TourOps-BookingService/pkg/validation"
)

// Service сервис компаний-партнеров
type Service struct {
	companyRepo CompanyRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса компаний
func NewService(companyRepo CompanyRepository, logger Logger) *Service {
	return &Service{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// List получает страницу компаний
func (s *Service) List(ctx context.Context, req *models.ListCompaniesRequest) (*models.CompanyListResponse, error) {
	page, limit := domain.NormalizePage(req.Page, req.Limit)

	list, total, err := s.companyRepo.List(ctx, domain.CompaniesFilter{Status: req.Status, Page: page, Limit: limit})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCompanyList(list, page, limit, total), nil
}

// GetByID получает компанию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CompanyResponse, error) {
	c, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetByID", id, err)
	}
	return models.FromDomainCompany(c), nil
}

// Create создает компанию
func (s *Service) Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.CompanyResponse, error) {
	s.logger.Info("Create: creating company name=%q", req.Name)

	if err := validation.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	isActive := true
	if req.Status != nil {
		isActive = *req.Status
	}

	created, err := s.companyRepo.Create(ctx, &domain.Company{
		Name:                 req.Name,
		CommissionPercentage: req.CommissionPercentage,
		IsActive:             isActive,
	})
	if err != nil {
		return nil, s.mapError("Create", 0, err)
	}

	s.logger.Info("Create: successfully created company id=%d", created.ID)
	return models.FromDomainCompany(created), nil
}

// Update частично обновляет компанию
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCompanyRequest) (*models.CompanyResponse, error) {
	if err := validation.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed for company id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	c, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("Update", id, err)
	}

	req.ApplyTo(c)

	if err := s.companyRepo.Update(ctx, c); err != nil {
		return nil, s.mapError("Update", id, err)
	}

	s.logger.Info("Update: successfully updated company id=%d", id)
	return models.FromDomainCompany(c), nil
}

// ToggleStatus переключает статус компании
func (s *Service) ToggleStatus(ctx context.Context, id int64) (*models.CompanyResponse, error) {
	c, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("ToggleStatus", id, err)
	}

	c.IsActive = !c.IsActive
	if err := s.companyRepo.Update(ctx, c); err != nil {
		return nil, s.mapError("ToggleStatus", id, err)
	}

	return models.FromDomainCompany(c), nil
}

// Delete удаляет компанию, бронирования сохраняются без ссылки на нее
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", id, err)
	}
	s.logger.Info("Delete: successfully deleted company id=%d", id)
	return nil
}

func (s *Service) mapError(op string, id int64, err error) error {
	if errors.Is(err, companyRepo.ErrCompanyNotFound) {
		s.logger.Warn("%s: company id=%d not found", op, id)
		return ErrCompanyNotFound
	}
	s.logger.Error("%s: repository error for company id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
