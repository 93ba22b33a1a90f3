package fakes

import (
	"context"
	"sort"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	settingRepo "github.com/m04kA/TourOps-BookingService/internal/infra/storage/setting"
)

// SettingRepo in-memory репозиторий настроек
type SettingRepo struct {
	db *DB
}

func NewSettingRepo(db *DB) *SettingRepo {
	return &SettingRepo{db: db}
}

func (r *SettingRepo) List(ctx context.Context, filter domain.SettingsFilter) ([]*domain.Setting, int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	all := make([]*domain.Setting, 0, len(r.db.settings))
	for _, s := range r.db.settings {
		s := s
		all = append(all, &s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Key < all[j].Key })

	return paginate(all, filter.Page, filter.Limit), len(all), nil
}

func (r *SettingRepo) GetByKey(ctx context.Context, key string) (*domain.Setting, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.settings[key]
	if !ok {
		return nil, settingRepo.ErrSettingNotFound
	}
	return &s, nil
}

func (r *SettingRepo) GetByKeys(ctx context.Context, keys []string) ([]*domain.Setting, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	result := make([]*domain.Setting, 0, len(keys))
	for _, key := range keys {
		if s, ok := r.db.settings[key]; ok {
			result = append(result, &s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result, nil
}

func (r *SettingRepo) UpdateValue(ctx context.Context, key, value string) (*domain.Setting, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.settings[key]
	if !ok {
		return nil, settingRepo.ErrSettingNotFound
	}
	s.Value = value
	r.db.settings[key] = s
	return &s, nil
}
