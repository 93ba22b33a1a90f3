package assign_guides

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда проведение не найдено
	ErrScheduleNotFound = errors.New("assign_guides: schedule not found")

	// ErrGuideNotFound возвращается, когда гид не найден или выключен
	ErrGuideNotFound = errors.New("assign_guides: guide not found")

	// ErrLeaderConflict возвращается, когда в наборе больше одного лидера
	ErrLeaderConflict = errors.New("assign_guides: more than one leader")

	// ErrDuplicateGuide возвращается, когда гид встречается в наборе дважды
	ErrDuplicateGuide = errors.New("assign_guides: guide assigned more than once")

	// ErrAlreadyAssigned возвращается при автоназначении на проведение, у которого уже есть гиды
	ErrAlreadyAssigned = errors.New("assign_guides: schedule already has assignments")

	// ErrNoGuidesAvailable возвращается, когда стратегия не нашла гидов
	ErrNoGuidesAvailable = errors.New("assign_guides: no guides available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("assign_guides: internal error")
)
