package models

import (
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/pkg/types"
)

// UpdateSettingRequest запрос на изменение значения настройки
type UpdateSettingRequest struct {
	Value string `json:"value" validate:"required,max=1000"`
}

// ListSettingsRequest параметры списка настроек
type ListSettingsRequest struct {
	Page  int
	Limit int
}

// SettingResponse настройка
type SettingResponse struct {
	ID          int64     `json:"id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description *string   `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SettingListResponse страница настроек
type SettingListResponse struct {
	Items      []SettingResponse `json:"items"`
	Pagination types.Pagination  `json:"pagination"`
}

// FromDomainSetting конвертирует настройку в ответ
func FromDomainSetting(s *domain.Setting) *SettingResponse {
	return &SettingResponse{
		ID:          s.ID,
		Key:         s.Key,
		Value:       s.Value,
		Description: s.Description,
		UpdatedAt:   s.UpdatedAt,
	}
}

// FromDomainSettings конвертирует список настроек
func FromDomainSettings(list []*domain.Setting) []SettingResponse {
	result := make([]SettingResponse, 0, len(list))
	for _, s := range list {
		result = append(result, *FromDomainSetting(s))
	}
	return result
}

// FromDomainSettingList собирает страницу настроек
func FromDomainSettingList(list []*domain.Setting, page, limit, total int) *SettingListResponse {
	return &SettingListResponse{
		Items:      FromDomainSettings(list),
		Pagination: types.NewPagination(page, limit, total),
	}
}
