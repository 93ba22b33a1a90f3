package models

import (
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/pkg/types"
)

// Request модели

// CreateActivityTypeRequest запрос на создание типа активности
type CreateActivityTypeRequest struct {
	Code        string  `json:"code" validate:"required,max=50"`
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description,omitempty"`
}

// UpdateActivityTypeRequest частичное обновление типа активности
type UpdateActivityTypeRequest struct {
	Code        *string `json:"code,omitempty" validate:"omitempty,min=1,max=50"`
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
}

// CreateActivityRequest запрос на создание активности
type CreateActivityRequest struct {
	ActivityTypeID int64   `json:"activityTypeId" validate:"required,gt=0"`
	Title          string  `json:"title" validate:"required,max=200"`
	PartySize      int     `json:"partySize" validate:"gt=0"`
	AdultPrice     float64 `json:"adultPrice" validate:"gte=0"`
	ChildPrice     float64 `json:"childPrice" validate:"gte=0"`
	SeniorPrice    float64 `json:"seniorPrice" validate:"gte=0"`
	Status         *bool   `json:"status,omitempty"`
}

// UpdateActivityRequest частичное обновление активности
// Все поля опциональны - обновляются только переданные значения
type UpdateActivityRequest struct {
	ActivityTypeID *int64   `json:"activityTypeId,omitempty" validate:"omitempty,gt=0"`
	Title          *string  `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	PartySize      *int     `json:"partySize,omitempty" validate:"omitempty,gt=0"`
	AdultPrice     *float64 `json:"adultPrice,omitempty" validate:"omitempty,gte=0"`
	ChildPrice     *float64 `json:"childPrice,omitempty" validate:"omitempty,gte=0"`
	SeniorPrice    *float64 `json:"seniorPrice,omitempty" validate:"omitempty,gte=0"`
	Status         *bool    `json:"status,omitempty"`
}

// ListActivitiesRequest параметры списка активностей
type ListActivitiesRequest struct {
	Status *bool
	Page   int
	Limit  int
}

// Response модели

// ActivityTypeResponse тип активности
type ActivityTypeResponse struct {
	ID          int64   `json:"id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// ActivityResponse активность
type ActivityResponse struct {
	ID               int64     `json:"id"`
	ActivityTypeID   int64     `json:"activityTypeId"`
	ActivityTypeName string    `json:"activityTypeName"`
	Title            string    `json:"title"`
	PartySize        int       `json:"partySize"`
	AdultPrice       float64   `json:"adultPrice"`
	ChildPrice       float64   `json:"childPrice"`
	SeniorPrice      float64   `json:"seniorPrice"`
	Status           bool      `json:"status"`
	SchedulesCount   int       `json:"schedulesCount"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ActivityListResponse страница активностей
type ActivityListResponse struct {
	Items      []ActivityResponse `json:"items"`
	Pagination types.Pagination   `json:"pagination"`
}

// Конвертеры

// ToDomainActivity собирает новую активность из запроса
func (r *CreateActivityRequest) ToDomainActivity() *domain.Activity {
	isActive := true
	if r.Status != nil {
		isActive = *r.Status
	}
	return &domain.Activity{
		ActivityTypeID: r.ActivityTypeID,
		Title:          r.Title,
		PartySize:      r.PartySize,
		AdultPrice:     r.AdultPrice,
		ChildPrice:     r.ChildPrice,
		SeniorPrice:    r.SeniorPrice,
		IsActive:       isActive,
	}
}

// ApplyTo накладывает переданные поля на активность
func (r *UpdateActivityRequest) ApplyTo(a *domain.Activity) {
	if r.ActivityTypeID != nil {
		a.ActivityTypeID = *r.ActivityTypeID
	}
	if r.Title != nil {
		a.Title = *r.Title
	}
	if r.PartySize != nil {
		a.PartySize = *r.PartySize
	}
	if r.AdultPrice != nil {
		a.AdultPrice = *r.AdultPrice
	}
	if r.ChildPrice != nil {
		a.ChildPrice = *r.ChildPrice
	}
	if r.SeniorPrice != nil {
		a.SeniorPrice = *r.SeniorPrice
	}
	if r.Status != nil {
		a.IsActive = *r.Status
	}
}

// ApplyTo накладывает переданные поля на тип активности
func (r *UpdateActivityTypeRequest) ApplyTo(t *domain.ActivityType) {
	if r.Code != nil {
		t.Code = *r.Code
	}
	if r.Name != nil {
		t.Name = *r.Name
	}
	if r.Description != nil {
		t.Description = r.Description
	}
}

// FromDomainActivityType конвертирует тип активности в ответ
func FromDomainActivityType(t *domain.ActivityType) *ActivityTypeResponse {
	return &ActivityTypeResponse{
		ID:          t.ID,
		Code:        t.Code,
		Name:        t.Name,
		Description: t.Description,
	}
}

// FromDomainActivityTypes конвертирует список типов
func FromDomainActivityTypes(list []*domain.ActivityType) []ActivityTypeResponse {
	result := make([]ActivityTypeResponse, 0, len(list))
	for _, t := range list {
		result = append(result, *FromDomainActivityType(t))
	}
	return result
}

// FromDomainActivity конвертирует активность в ответ
func FromDomainActivity(a *domain.Activity) *ActivityResponse {
	return &ActivityResponse{
		ID:               a.ID,
		ActivityTypeID:   a.ActivityTypeID,
		ActivityTypeName: a.ActivityTypeName,
		Title:            a.Title,
		PartySize:        a.PartySize,
		AdultPrice:       a.AdultPrice,
		ChildPrice:       a.ChildPrice,
		SeniorPrice:      a.SeniorPrice,
		Status:           a.IsActive,
		SchedulesCount:   a.SchedulesCount,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// FromDomainActivityList собирает страницу активностей
func FromDomainActivityList(list []*domain.Activity, page, limit, total int) *ActivityListResponse {
	items := make([]ActivityResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *FromDomainActivity(a))
	}
	return &ActivityListResponse{
		Items:      items,
		Pagination: types.NewPagination(page, limit, total),
	}
}
