package domain

import (
	"errors"
	"time"
)

var (
	ErrMultipleLeaders = errors.New("more than one leader assigned")
	ErrDuplicateGuide  = errors.New("guide assigned more than once")

	// ErrNoGuidesAvailable свободных гидов не хватает на группу
	ErrNoGuidesAvailable = errors.New("no guides available")
)

// Language язык, на котором гид проводит экскурсии
type Language struct {
	ID       int64
	Code     string
	Name     string
	IsActive bool
}

// Guide гид
type Guide struct {
	ID           int64
	Name         string
	Email        *string
	Phone        *string
	MaxPartySize *int
	IsActive     bool
	LanguageIDs  []int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Capacity returns how many people the guide can lead, zero when unknown
func (g *Guide) Capacity() int {
	if g.MaxPartySize == nil {
		return 0
	}
	return *g.MaxPartySize
}

// Assignment назначение гида на проведение
type Assignment struct {
	ScheduleID int64
	GuideID    int64
	GuideName  string
	IsLeader   bool
	AssignedAt time.Time
}

// GuidesFilter фильтр списка гидов
type GuidesFilter struct {
	Status *bool
	Page   int
	Limit  int
}

// LeadersCount returns the number of leader assignments
func LeadersCount(assignments []Assignment) int {
	count := 0
	for _, a := range assignments {
		if a.IsLeader {
			count++
		}
	}
	return count
}

// ValidateAssignments проверяет набор назначений одного проведения:
// не больше одного лидера и каждый гид встречается один раз
func ValidateAssignments(assignments []Assignment) error {
	if LeadersCount(assignments) > 1 {
		return ErrMultipleLeaders
	}

	seen := make(map[int64]struct{}, len(assignments))
	for _, a := range assignments {
		if _, ok := seen[a.GuideID]; ok {
			return ErrDuplicateGuide
		}
		seen[a.GuideID] = struct{}{}
	}
	return nil
}
