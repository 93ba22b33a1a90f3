package guide

import "errors"

var (
	// ErrGuideNotFound возвращается, когда гид не найден
	ErrGuideNotFound = errors.New("guide.repository: guide not found")

	// ErrLanguageNotFound возвращается при ссылке на несуществующий язык
	ErrLanguageNotFound = errors.New("guide.repository: language not found")

	// ErrLeaderConflict возвращается при попытке сохранить второго лидера
	ErrLeaderConflict = errors.New("guide.repository: schedule already has a leader")

	// ErrDuplicateAssignment возвращается при повторном назначении гида
	ErrDuplicateAssignment = errors.New("guide.repository: guide already assigned")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("guide.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("guide.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("guide.repository: failed to scan row")
)
