package create_booking

import "github.com/m04kA/TourOps-BookingService/internal/domain"

// Request модель запроса на создание бронирования
type Request struct {
	ActivityScheduleID   int64    // ID проведения
	CompanyID            *int64   // Компания-партнер (опционально)
	Transport            bool     // Нужен трансфер
	PassengerCount       *int     // Пассажиров трансфера, обязателен при Transport
	NumberOfPeople       int      // Размер группы
	AdultCount           int      // Взрослые
	ChildCount           int      // Дети
	SeniorCount          int      // Пенсионеры
	CommissionPercentage *float64 // Комиссия, по умолчанию берется у компании
	CustomerName         string   // Имя клиента
	CustomerEmail        *string  // Email клиента (опционально)
	CustomerPhone        *string  // Телефон клиента (опционально)
	Status               *string  // pending (по умолчанию) или confirmed
	CreatedBy            *int64   // ID сотрудника
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking         *domain.Booking // Созданное бронирование
	AvailableSpaces int             // Свободные места проведения после списания
}

// Counts возвращает разбивку группы по категориям
func (r *Request) Counts() domain.PartyCounts {
	return domain.PartyCounts{
		Adult:  r.AdultCount,
		Child:  r.ChildCount,
		Senior: r.SeniorCount,
	}
}
