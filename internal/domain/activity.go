package domain

import "time"

// ActivityType тип туристической активности (справочник)
type ActivityType struct {
	ID          int64
	Code        string
	Name        string
	Description *string
}

// Activity бронируемая активность с базовыми ценами и максимальным размером группы
type Activity struct {
	ID               int64
	ActivityTypeID   int64
	ActivityTypeName string // денормализовано для списков
	Title            string
	PartySize        int
	AdultPrice       float64
	ChildPrice       float64
	SeniorPrice      float64
	IsActive         bool
	SchedulesCount   int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Prices возвращает цены активности по категориям
func (a *Activity) Prices() Prices {
	return Prices{
		Adult:  a.AdultPrice,
		Child:  a.ChildPrice,
		Senior: a.SeniorPrice,
	}
}

// ActivitiesFilter фильтр списка активностей
type ActivitiesFilter struct {
	Status *bool
	Page   int
	Limit  int
}
