package domain

import (
	"strconv"
	"time"
)

// Setting системная настройка ключ-значение
type Setting struct {
	ID          int64
	Key         string
	Value       string
	Description *string
	UpdatedAt   time.Time
}

// IntValue parses the setting value as an integer
func (s *Setting) IntValue() (int, error) {
	return strconv.Atoi(s.Value)
}

// SettingsFilter фильтр списка настроек
type SettingsFilter struct {
	Page  int
	Limit int
}
