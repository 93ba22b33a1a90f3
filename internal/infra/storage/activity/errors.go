package activity

import "errors"

var (
	// ErrActivityNotFound возвращается, когда активность не найдена
	ErrActivityNotFound = errors.New("activity.repository: activity not found")

	// ErrActivityTypeNotFound возвращается, когда тип активности не найден
	ErrActivityTypeNotFound = errors.New("activity.repository: activity type not found")

	// ErrDuplicateTypeCode возвращается при повторном коде типа активности
	ErrDuplicateTypeCode = errors.New("activity.repository: duplicate activity type code")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("activity.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("activity.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("activity.repository: failed to scan row")
)
