package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда проведение не найдено
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrNotEnoughCapacity возвращается, когда условное изменение booked_count не прошло
	ErrNotEnoughCapacity = errors.New("schedule.repository: not enough capacity")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
