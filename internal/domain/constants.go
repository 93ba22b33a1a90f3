package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Пагинация списков
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Business validation constants
const (
	MinCommissionPercentage = 0
	MaxCommissionPercentage = 100
	MaxCustomerNameLength   = 200
	MaxTitleLength          = 200
	DefaultBulkMaxDays      = 366
)

// Ключи системных настроек, которые читает сервис
const (
	SettingBulkMaxDays = "schedules.bulk_max_days"
)

// ActiveBookingStatuses статусы бронирований, занимающих места
var ActiveBookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// Причины конфликтов при массовом создании расписаний
const (
	ConflictReasonOverlap = "overlap"
)
