package create_schedule

import "errors"

var (
	// ErrActivityNotFound возвращается, когда активность не найдена
	ErrActivityNotFound = errors.New("create_schedule: activity not found")

	// ErrScheduleOverlap возвращается, когда проведение пересекается с активным проведением той же активности
	ErrScheduleOverlap = errors.New("create_schedule: schedule overlaps an active schedule")

	// ErrGuideNotFound возвращается, когда назначаемый гид не найден или выключен
	ErrGuideNotFound = errors.New("create_schedule: guide not found")

	// ErrLeaderConflict возвращается, когда в наборе гидов больше одного лидера
	ErrLeaderConflict = errors.New("create_schedule: more than one leader")

	// ErrDuplicateGuide возвращается, когда гид встречается в наборе дважды
	ErrDuplicateGuide = errors.New("create_schedule: guide assigned more than once")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_schedule: internal error")
)
