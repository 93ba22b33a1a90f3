package create_schedule

import (
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

// Request модель запроса на создание проведения
type Request struct {
	ActivityID     int64
	ScheduledStart time.Time
	ScheduledEnd   time.Time
	Capacity       *int  // по умолчанию размер группы активности
	IsActive       *bool // по умолчанию true

	AdultPrice  *float64
	ChildPrice  *float64
	SeniorPrice *float64

	Assignments []domain.Assignment
	AutoAssign  bool // учитывается, только если Assignments пуст
}

// Response модель ответа с созданным проведением
type Response struct {
	Schedule    *domain.Schedule
	Assignments []domain.Assignment

	// AutoAssignError причина неудачного автоназначения, проведение при этом уже создано
	AutoAssignError error
}
