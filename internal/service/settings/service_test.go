package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/internal/service/settings/models"
	"github.com/m04kA/TourOps-BookingService/internal/testutil/fakes"
)

func newTestService() (*Service, *fakes.DB) {
	db := fakes.NewDB()
	db.AddSetting(domain.Setting{Key: domain.SettingBulkMaxDays, Value: "366"})
	db.AddSetting(domain.Setting{Key: "company.name", Value: "TourOps"})
	return NewService(fakes.NewSettingRepo(db), fakes.Logger{}), db
}

func TestService_GetAndList(t *testing.T) {
	svc, _ := newTestService()

	setting, err := svc.Get(context.Background(), "company.name")
	require.NoError(t, err)
	assert.Equal(t, "TourOps", setting.Value)

	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSettingNotFound)

	page, err := svc.List(context.Background(), &models.ListSettingsRequest{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Pagination.Total)

	list, err := svc.GetByKeys(context.Background(), []string{"company.name", "missing"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "company.name", list[0].Key)
}

func TestService_UpdateValue(t *testing.T) {
	svc, _ := newTestService()

	updated, err := svc.UpdateValue(context.Background(), domain.SettingBulkMaxDays, &models.UpdateSettingRequest{Value: "90"})
	require.NoError(t, err)
	assert.Equal(t, "90", updated.Value)

	tests := []struct {
		name    string
		key     string
		value   string
		wantErr error
	}{
		{name: "empty value", key: "company.name", value: "", wantErr: ErrInvalidInput},
		{name: "non numeric bulk limit", key: domain.SettingBulkMaxDays, value: "many", wantErr: ErrInvalidInput},
		{name: "zero bulk limit", key: domain.SettingBulkMaxDays, value: "0", wantErr: ErrInvalidInput},
		{name: "unknown key", key: "missing", value: "x", wantErr: ErrSettingNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateValue(context.Background(), tt.key, &models.UpdateSettingRequest{Value: tt.value})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
