// Package fakes содержит in-memory реализации репозиториев для тестов сервисов и usecase
package fakes

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
)

// DB общее in-memory хранилище, разделяемое фейковыми репозиториями
type DB struct {
	mu     sync.Mutex
	nextID int64
	now    time.Time

	activityTypes  map[int64]domain.ActivityType
	activities     map[int64]domain.Activity
	schedules      map[int64]domain.Schedule
	bookings       map[int64]domain.Booking
	companies      map[int64]domain.Company
	guides         map[int64]domain.Guide
	languages      map[int64]domain.Language
	assignments    map[int64][]domain.Assignment
	settings       map[string]domain.Setting
	failNextInsert error
}

// NewDB создает пустое хранилище
func NewDB() *DB {
	return &DB{
		now:           time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		activityTypes: map[int64]domain.ActivityType{},
		activities:    map[int64]domain.Activity{},
		schedules:     map[int64]domain.Schedule{},
		bookings:      map[int64]domain.Booking{},
		companies:     map[int64]domain.Company{},
		guides:        map[int64]domain.Guide{},
		languages:     map[int64]domain.Language{},
		assignments:   map[int64][]domain.Assignment{},
		settings:      map[string]domain.Setting{},
	}
}

func (db *DB) id() int64 {
	db.nextID++
	return db.nextID
}

// FailNextBookingInsert заставляет следующую вставку бронирования вернуть err
func (db *DB) FailNextBookingInsert(err error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.failNextInsert = err
}

// AddActivityType сохраняет тип активности
func (db *DB) AddActivityType(t domain.ActivityType) domain.ActivityType {
	db.mu.Lock()
	defer db.mu.Unlock()
	t.ID = db.id()
	db.activityTypes[t.ID] = t
	return t
}

// AddActivity сохраняет активность
func (db *DB) AddActivity(a domain.Activity) domain.Activity {
	db.mu.Lock()
	defer db.mu.Unlock()
	a.ID = db.id()
	a.CreatedAt, a.UpdatedAt = db.now, db.now
	db.activities[a.ID] = a
	return a
}

// AddSchedule сохраняет проведение
func (db *DB) AddSchedule(s domain.Schedule) domain.Schedule {
	db.mu.Lock()
	defer db.mu.Unlock()
	s.ID = db.id()
	s.CreatedAt, s.UpdatedAt = db.now, db.now
	db.schedules[s.ID] = s
	return s
}

// AddBooking сохраняет бронирование без изменения booked_count
func (db *DB) AddBooking(b domain.Booking) domain.Booking {
	db.mu.Lock()
	defer db.mu.Unlock()
	b.ID = db.id()
	b.CreatedAt, b.UpdatedAt = db.now, db.now
	db.bookings[b.ID] = b
	return b
}

// AddCompany сохраняет компанию
func (db *DB) AddCompany(c domain.Company) domain.Company {
	db.mu.Lock()
	defer db.mu.Unlock()
	c.ID = db.id()
	db.companies[c.ID] = c
	return c
}

// AddGuide сохраняет гида
func (db *DB) AddGuide(g domain.Guide) domain.Guide {
	db.mu.Lock()
	defer db.mu.Unlock()
	g.ID = db.id()
	db.guides[g.ID] = g
	return g
}

// AddLanguage сохраняет язык
func (db *DB) AddLanguage(l domain.Language) domain.Language {
	db.mu.Lock()
	defer db.mu.Unlock()
	l.ID = db.id()
	db.languages[l.ID] = l
	return l
}

// AddSetting сохраняет настройку
func (db *DB) AddSetting(s domain.Setting) domain.Setting {
	db.mu.Lock()
	defer db.mu.Unlock()
	s.ID = db.id()
	db.settings[s.Key] = s
	return s
}

// AddAssignments сохраняет назначения проведения
func (db *DB) AddAssignments(scheduleID int64, assignments ...domain.Assignment) {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i := range assignments {
		assignments[i].ScheduleID = scheduleID
	}
	db.assignments[scheduleID] = append(db.assignments[scheduleID], assignments...)
}

// Schedule возвращает текущее состояние проведения
func (db *DB) Schedule(id int64) (domain.Schedule, bool) {
	db.mu.Lock()
	defer db.mu.Unlock()
	s, ok := db.schedules[id]
	return s, ok
}

// Booking возвращает текущее состояние бронирования
func (db *DB) Booking(id int64) (domain.Booking, bool) {
	db.mu.Lock()
	defer db.mu.Unlock()
	b, ok := db.bookings[id]
	return b, ok
}

// Bookings возвращает все бронирования проведения
func (db *DB) Bookings(scheduleID int64) []domain.Booking {
	db.mu.Lock()
	defer db.mu.Unlock()
	var result []domain.Booking
	for _, b := range db.bookings {
		if b.ActivityScheduleID == scheduleID {
			result = append(result, b)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Assignments возвращает назначения проведения
func (db *DB) Assignments(scheduleID int64) []domain.Assignment {
	db.mu.Lock()
	defer db.mu.Unlock()
	return append([]domain.Assignment(nil), db.assignments[scheduleID]...)
}

// SchedulesOf возвращает проведения активности по времени начала
func (db *DB) SchedulesOf(activityID int64) []domain.Schedule {
	db.mu.Lock()
	defer db.mu.Unlock()
	var result []domain.Schedule
	for _, s := range db.schedules {
		if s.ActivityID == activityID {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ScheduledStart.Before(result[j].ScheduledStart) })
	return result
}

// ActivityExists проверяет наличие активности
func (db *DB) ActivityExists(id int64) bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	_, ok := db.activities[id]
	return ok
}

func paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

type txKey struct{}

// TxManager выполняет функции последовательно, имитируя блокировки строк
// Откат изменений не поддерживается
type TxManager struct {
	mu    sync.Mutex
	Calls int
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	return fn(context.WithValue(ctx, txKey{}, true))
}

func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// Logger логгер, отбрасывающий сообщения
type Logger struct{}

func (Logger) Debug(string, ...interface{}) {}
func (Logger) Info(string, ...interface{})  {}
func (Logger) Warn(string, ...interface{})  {}
func (Logger) Error(string, ...interface{}) {}
