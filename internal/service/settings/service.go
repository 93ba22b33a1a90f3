package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	settingRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/setting"
	"github.com/m04kA/TourOps-BookingService/internal/service/settings/models"
	"github.com/m04kA/TourOps-BookingService/pkg/validation"
)

// Service сервис системных настроек
type Service struct {
	settingRepo SettingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingRepo SettingRepository, logger Logger) *Service {
	return &Service{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

// List получает страницу настроек
func (s *Service) List(ctx context.Context, req *models.ListSettingsRequest) (*models.SettingListResponse, error) {
	page, limit := domain.NormalizePage(req.Page, req.Limit)

	list, total, err := s.settingRepo.List(ctx, domain.SettingsFilter{Page: page, Limit: limit})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettingList(list, page, limit, total), nil
}

// Get получает настройку по ключу
func (s *Service) Get(ctx context.Context, key string) (*models.SettingResponse, error) {
	setting, err := s.settingRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, s.mapError("Get", key, err)
	}
	return models.FromDomainSetting(setting), nil
}

// GetByKeys получает набор настроек, отсутствующие ключи пропускаются
func (s *Service) GetByKeys(ctx context.Context, keys []string) ([]models.SettingResponse, error) {
	if len(keys) == 0 {
		return []models.SettingResponse{}, nil
	}

	list, err := s.settingRepo.GetByKeys(ctx, keys)
	if err != nil {
		s.logger.Error("GetByKeys: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByKeys - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSettings(list), nil
}

// UpdateValue меняет значение существующей настройки
// Значения известных числовых настроек проверяются на корректность
func (s *Service) UpdateValue(ctx context.Context, key string, req *models.UpdateSettingRequest) (*models.SettingResponse, error) {
	s.logger.Info("UpdateValue: updating setting key=%s", key)

	if err := validation.Struct(req); err != nil {
		s.logger.Warn("UpdateValue: validation failed for key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if key == domain.SettingBulkMaxDays {
		candidate := domain.Setting{Value: req.Value}
		days, err := candidate.IntValue()
		if err != nil || days <= 0 {
			s.logger.Warn("UpdateValue: invalid value %q for key=%s", req.Value, key)
			return nil, fmt.Errorf("%w: %s must be a positive integer", ErrInvalidInput, key)
		}
	}

	updated, err := s.settingRepo.UpdateValue(ctx, key, req.Value)
	if err != nil {
		return nil, s.mapError("UpdateValue", key, err)
	}

	s.logger.Info("UpdateValue: successfully updated setting key=%s", key)
	return models.FromDomainSetting(updated), nil
}

func (s *Service) mapError(op, key string, err error) error {
	if errors.Is(err, settingRepo.ErrSettingNotFound) {
		s.logger.Warn("%s: setting key=%s not found", op, key)
		return ErrSettingNotFound
	}
	s.logger.Error("%s: repository error for setting key=%s: %v", op, key, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
