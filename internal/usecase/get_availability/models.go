package get_availability

import "github.com/m04kA/TourOps-BookingService/internal/domain"

// ListRequest модель запроса списка проведений с доступностью
type ListRequest struct {
	ActivityID *int64
	StartDate  string // YYYY-MM-DD, опционально
	EndDate    string // YYYY-MM-DD включительно, опционально
	OnlyActive bool
	Upcoming   bool // только проведения, которые еще не начались
}

// QuoteRequest модель запроса расчета стоимости
type QuoteRequest struct {
	ScheduleID  int64
	AdultCount  int
	ChildCount  int
	SeniorCount int
}

// Counts возвращает разбивку группы по категориям
func (r *QuoteRequest) Counts() domain.PartyCounts {
	return domain.PartyCounts{
		Adult:  r.AdultCount,
		Child:  r.ChildCount,
		Senior: r.SeniorCount,
	}
}

// Quote информационный расчет стоимости, ничего не резервирует
type Quote struct {
	ScheduleID      int64
	Counts          domain.PartyCounts
	Prices          domain.Prices
	TotalPrice      float64
	AvailableSpaces int
}
