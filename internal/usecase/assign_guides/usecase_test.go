package assign_guides

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/internal/integrations/guideselector"
	"github.com/m04kA/TourOps-BookingService/internal/testutil/fakes"
)

type fixture struct {
	db       *fakes.DB
	selector *fakes.GuideSelector
	uc       *UseCase
	schedule domain.Schedule
	anna     domain.Guide
	boris    domain.Guide
	retired  domain.Guide
}

func newFixture() *fixture {
	db := fakes.NewDB()
	start := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	schedule := db.AddSchedule(domain.Schedule{ActivityID: 1, ScheduledStart: start, ScheduledEnd: start.Add(2 * time.Hour), Capacity: 12, IsActive: true})
	selector := &fakes.GuideSelector{}
	return &fixture{
		db:       db,
		selector: selector,
		uc:       NewUseCase(fakes.NewScheduleRepo(db), fakes.NewGuideRepo(db), selector, &fakes.TxManager{}, fakes.Logger{}),
		schedule: schedule,
		anna:     db.AddGuide(domain.Guide{Name: "Anna", IsActive: true}),
		boris:    db.AddGuide(domain.Guide{Name: "Boris", IsActive: true}),
		retired:  db.AddGuide(domain.Guide{Name: "Retired", IsActive: false}),
	}
}

func TestReplace(t *testing.T) {
	f := newFixture()

	result, err := f.uc.Replace(context.Background(), f.schedule.ID, []domain.Assignment{
		{GuideID: f.boris.ID},
		{GuideID: f.anna.ID, IsLeader: true},
	})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Anna", result[0].GuideName)
	assert.True(t, result[0].IsLeader)

	result, err = f.uc.Replace(context.Background(), f.schedule.ID, []domain.Assignment{{GuideID: f.boris.ID, IsLeader: true}})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, f.boris.ID, f.db.Assignments(f.schedule.ID)[0].GuideID)
}

func TestReplace_AllOrNothing(t *testing.T) {
	tests := []struct {
		name        string
		assignments func(f *fixture) []domain.Assignment
		scheduleID  func(f *fixture) int64
		wantErr     error
	}{
		{
			name: "two leaders",
			assignments: func(f *fixture) []domain.Assignment {
				return []domain.Assignment{{GuideID: f.anna.ID, IsLeader: true}, {GuideID: f.boris.ID, IsLeader: true}}
			},
			wantErr: ErrLeaderConflict,
		},
		{
			name: "repeated guide",
			assignments: func(f *fixture) []domain.Assignment {
				return []domain.Assignment{{GuideID: f.anna.ID, IsLeader: true}, {GuideID: f.anna.ID}}
			},
			wantErr: ErrDuplicateGuide,
		},
		{
			name: "inactive guide",
			assignments: func(f *fixture) []domain.Assignment {
				return []domain.Assignment{{GuideID: f.anna.ID, IsLeader: true}, {GuideID: f.retired.ID}}
			},
			wantErr: ErrGuideNotFound,
		},
		{
			name: "unknown guide",
			assignments: func(f *fixture) []domain.Assignment {
				return []domain.Assignment{{GuideID: 999}}
			},
			wantErr: ErrGuideNotFound,
		},
		{
			name: "unknown schedule",
			assignments: func(f *fixture) []domain.Assignment {
				return []domain.Assignment{{GuideID: f.anna.ID}}
			},
			scheduleID: func(*fixture) int64 { return 999 },
			wantErr:    ErrScheduleNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.db.AddAssignments(f.schedule.ID, domain.Assignment{GuideID: f.boris.ID, IsLeader: true})
			scheduleID := f.schedule.ID
			if tt.scheduleID != nil {
				scheduleID = tt.scheduleID(f)
			}

			_, err := f.uc.Replace(context.Background(), scheduleID, tt.assignments(f))

			assert.ErrorIs(t, err, tt.wantErr)
			kept := f.db.Assignments(f.schedule.ID)
			require.Len(t, kept, 1)
			assert.Equal(t, f.boris.ID, kept[0].GuideID)
		})
	}
}

func TestAutoAssign(t *testing.T) {
	f := newFixture()
	f.selector.Assignments = []domain.Assignment{{GuideID: f.anna.ID, IsLeader: true}, {GuideID: f.boris.ID}}

	result, err := f.uc.AutoAssign(context.Background(), f.schedule.ID)

	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, 1, domain.LeadersCount(result))
	assert.Equal(t, []int{12}, f.selector.PartySizes)

	_, err = f.uc.AutoAssign(context.Background(), f.schedule.ID)
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
	assert.Equal(t, 1, f.selector.Calls)
}

func TestAutoAssign_SelectorResults(t *testing.T) {
	tests := []struct {
		name     string
		selected func(f *fixture) []domain.Assignment
		err      error
		wantErr  error
	}{
		{
			name:    "no guides from remote selector",
			err:     guideselector.ErrNoGuidesAvailable,
			wantErr: ErrNoGuidesAvailable,
		},
		{
			name:    "selector unavailable",
			err:     guideselector.ErrServiceUnavailable,
			wantErr: ErrInternal,
		},
		{
			name:     "empty selection",
			selected: func(*fixture) []domain.Assignment { return nil },
			wantErr:  ErrNoGuidesAvailable,
		},
		{
			name: "selector breaks the single leader rule",
			selected: func(f *fixture) []domain.Assignment {
				return []domain.Assignment{{GuideID: f.anna.ID, IsLeader: true}, {GuideID: f.boris.ID, IsLeader: true}}
			},
			wantErr: ErrLeaderConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.selector.Err = tt.err
			if tt.selected != nil {
				f.selector.Assignments = tt.selected(f)
			}

			_, err := f.uc.AutoAssign(context.Background(), f.schedule.ID)

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Empty(t, f.db.Assignments(f.schedule.ID))
		})
	}
}
