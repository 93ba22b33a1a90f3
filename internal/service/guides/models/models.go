package models

import (
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/pkg/types"
)

// CreateGuideRequest запрос на создание гида
type CreateGuideRequest struct {
	Name         string  `json:"name" validate:"required,max=200"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	MaxPartySize *int    `json:"maxPartySize,omitempty" validate:"omitempty,gt=0"`
	Status       *bool   `json:"status,omitempty"`
	LanguageIDs  []int64 `json:"languageIds,omitempty" validate:"omitempty,dive,gt=0"`
}

// UpdateGuideRequest частичное обновление гида
// LanguageIDs при передаче полностью заменяет набор языков
type UpdateGuideRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email        *string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string  `json:"phone,omitempty" validate:"omitempty,max=50"`
	MaxPartySize *int     `json:"maxPartySize,omitempty" validate:"omitempty,gt=0"`
	Status       *bool    `json:"status,omitempty"`
	LanguageIDs  *[]int64 `json:"languageIds,omitempty" validate:"omitempty,dive,gt=0"`
}

// ListGuidesRequest параметры списка гидов
type ListGuidesRequest struct {
	Status *bool
	Page   int
	Limit  int
}

// GuideResponse гид
type GuideResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        *string   `json:"email,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	MaxPartySize *int      `json:"maxPartySize,omitempty"`
	Status       bool      `json:"status"`
	LanguageIDs  []int64   `json:"languageIds"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// GuideListResponse страница гидов
type GuideListResponse struct {
	Items      []GuideResponse  `json:"items"`
	Pagination types.Pagination `json:"pagination"`
}

// LanguageResponse язык
type LanguageResponse struct {
	ID     int64  `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Status bool   `json:"status"`
}

// GuideAvailabilityResponse занятость гида на дату
type GuideAvailabilityResponse struct {
	GuideID            int64  `json:"guideId"`
	GuideName          string `json:"guideName"`
	MaxPartySize       *int   `json:"maxPartySize,omitempty"`
	IsAvailable        bool   `json:"isAvailable"`
	CurrentAssignments int    `json:"currentAssignments"`
	LeadingAssignments int    `json:"leadingAssignments"`
}

// ToDomainGuide конвертирует запрос в доменного гида
func (r *CreateGuideRequest) ToDomainGuide() *domain.Guide {
	isActive := true
	if r.Status != nil {
		isActive = *r.Status
	}
	return &domain.Guide{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		MaxPartySize: r.MaxPartySize,
		IsActive:     isActive,
	}
}

// ApplyTo накладывает переданные поля на гида
func (r *UpdateGuideRequest) ApplyTo(g *domain.Guide) {
	if r.Name != nil {
		g.Name = *r.Name
	}
	if r.Email != nil {
		g.Email = r.Email
	}
	if r.Phone != nil {
		g.Phone = r.Phone
	}
	if r.MaxPartySize != nil {
		g.MaxPartySize = r.MaxPartySize
	}
	if r.Status != nil {
		g.IsActive = *r.Status
	}
}

// FromDomainGuide конвертирует гида в ответ
func FromDomainGuide(g *domain.Guide) *GuideResponse {
	languageIDs := g.LanguageIDs
	if languageIDs == nil {
		languageIDs = []int64{}
	}
	return &GuideResponse{
		ID:           g.ID,
		Name:         g.Name,
		Email:        g.Email,
		Phone:        g.Phone,
		MaxPartySize: g.MaxPartySize,
		Status:       g.IsActive,
		LanguageIDs:  languageIDs,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

// FromDomainGuideList собирает страницу гидов
func FromDomainGuideList(list []*domain.Guide, page, limit, total int) *GuideListResponse {
	items := make([]GuideResponse, 0, len(list))
	for _, g := range list {
		items = append(items, *FromDomainGuide(g))
	}
	return &GuideListResponse{Items: items, Pagination: types.NewPagination(page, limit, total)}
}

// FromDomainLanguages конвертирует справочник языков
func FromDomainLanguages(list []*domain.Language) []LanguageResponse {
	result := make([]LanguageResponse, 0, len(list))
	for _, l := range list {
		result = append(result, LanguageResponse{ID: l.ID, Code: l.Code, Name: l.Name, Status: l.IsActive})
	}
	return result
}

// FromDomainLoads конвертирует занятость гидов
func FromDomainLoads(loads []domain.GuideLoad) []GuideAvailabilityResponse {
	result := make([]GuideAvailabilityResponse, 0, len(loads))
	for _, l := range loads {
		result = append(result, GuideAvailabilityResponse{
			GuideID:            l.Guide.ID,
			GuideName:          l.Guide.Name,
			MaxPartySize:       l.Guide.MaxPartySize,
			IsAvailable:        l.IsFree(),
			CurrentAssignments: l.Assignments,
			LeadingAssignments: l.Leading,
		})
	}
	return result
}
