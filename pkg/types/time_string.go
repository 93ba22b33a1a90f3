package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const timeLayout = "15:04"

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда результат выходит за пределы суток
	ErrTimeOverflow = errors.New("time string overflows the day")
)

// TimeString время суток в формате HH:MM без даты и часового пояса
type TimeString string

// NewTimeString создает TimeString из часов и минут time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку формата HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет формат HH:MM
func (t TimeString) Validate() error {
	if len(t) != len(timeLayout) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// AddMinutes прибавляет минуты, не выходя за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	total := t.Minutes() + minutes
	if total < 0 || total >= minutesPerDay {
		return "", ErrTimeOverflow
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// OnDate собирает момент времени из календарной даты и времени суток
// Часовой пояс берется из date
func (t TimeString) OnDate(date time.Time) time.Time {
	m := t.Minutes()
	return time.Date(date.Year(), date.Month(), date.Day(), m/60, m%60, 0, 0, date.Location())
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan реализует sql.Scanner (поддерживает TIME и TEXT колонки)
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
	case string:
		*t = TimeString(trimSeconds(v))
	case []byte:
		*t = TimeString(trimSeconds(string(v)))
	case time.Time:
		*t = NewTimeString(v)
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
	return nil
}

// trimSeconds отбрасывает секунды у значений вида HH:MM:SS
func trimSeconds(s string) string {
	if len(s) > len(timeLayout) {
		return s[:len(timeLayout)]
	}
	return s
}
