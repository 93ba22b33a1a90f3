package create_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/internal/testutil/fakes"
	"github.com/m04kA/TourOps-BookingService/internal/usecase/assign_guides"
	"github.com/m04kA/TourOps-BookingService/pkg/ptr"
)

type recordingMetrics struct {
	added     int
	conflicts int
}

func (m *recordingMetrics) SchedulesAdded(n int)         { m.added += n }
func (m *recordingMetrics) ScheduleConflictsFound(n int) { m.conflicts += n }

type fixture struct {
	db       *fakes.DB
	selector *fakes.GuideSelector
	metrics  *recordingMetrics
	uc       *UseCase
	activity domain.Activity
	anna     domain.Guide
	boris    domain.Guide
}

var morning = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func newFixture() *fixture {
	db := fakes.NewDB()
	activity := db.AddActivity(domain.Activity{Title: "River cruise", PartySize: 8, AdultPrice: 30, IsActive: true})
	db.AddSchedule(domain.Schedule{
		ActivityID:     activity.ID,
		ScheduledStart: morning,
		ScheduledEnd:   morning.Add(2 * time.Hour),
		Capacity:       8,
		IsActive:       true,
	})

	selector := &fakes.GuideSelector{}
	m := &recordingMetrics{}
	tx := &fakes.TxManager{}
	assigner := assign_guides.NewUseCase(fakes.NewScheduleRepo(db), fakes.NewGuideRepo(db), selector, tx, fakes.Logger{})

	return &fixture{
		db:       db,
		selector: selector,
		metrics:  m,
		uc:       NewUseCase(fakes.NewActivityRepo(db), fakes.NewScheduleRepo(db), assigner, tx, m, fakes.Logger{}),
		activity: activity,
		anna:     db.AddGuide(domain.Guide{Name: "Anna", IsActive: true}),
		boris:    db.AddGuide(domain.Guide{Name: "Boris", IsActive: true}),
	}
}

func (f *fixture) request(start time.Time) *Request {
	return &Request{
		ActivityID:     f.activity.ID,
		ScheduledStart: start,
		ScheduledEnd:   start.Add(2 * time.Hour),
	}
}

func TestExecute_Defaults(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), f.request(morning.Add(3*time.Hour)))

	require.NoError(t, err)
	assert.Equal(t, 8, resp.Schedule.Capacity)
	assert.Equal(t, 0, resp.Schedule.BookedCount)
	assert.True(t, resp.Schedule.IsActive)
	assert.Equal(t, "River cruise", resp.Schedule.ActivityTitle)
	assert.NotNil(t, resp.Assignments)
	assert.Empty(t, resp.Assignments)
	assert.NoError(t, resp.AutoAssignError)
	assert.Equal(t, 1, f.metrics.added)
	assert.Len(t, f.db.SchedulesOf(f.activity.ID), 2)
}

func TestExecute_ExplicitCapacityAndPrices(t *testing.T) {
	f := newFixture()
	req := f.request(morning.Add(24 * time.Hour))
	req.Capacity = ptr.Ptr(0)
	req.ChildPrice = ptr.Ptr(10.0)

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Schedule.Capacity)
	assert.Equal(t, 10.0, ptr.Deref(resp.Schedule.ChildPrice, 0))
	assert.Nil(t, resp.Schedule.AdultPrice)
}

func TestExecute_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(f *fixture, req *Request)
		wantErr error
	}{
		{
			name:    "end equals start",
			modify:  func(_ *fixture, req *Request) { req.ScheduledEnd = req.ScheduledStart },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing start",
			modify:  func(_ *fixture, req *Request) { req.ScheduledStart = time.Time{} },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative capacity",
			modify:  func(_ *fixture, req *Request) { req.Capacity = ptr.Ptr(-1) },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative price",
			modify:  func(_ *fixture, req *Request) { req.SeniorPrice = ptr.Ptr(-5.0) },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown activity",
			modify:  func(_ *fixture, req *Request) { req.ActivityID = 999 },
			wantErr: ErrActivityNotFound,
		},
		{
			name: "two leaders",
			modify: func(f *fixture, req *Request) {
				req.Assignments = []domain.Assignment{{GuideID: f.anna.ID, IsLeader: true}, {GuideID: f.boris.ID, IsLeader: true}}
			},
			wantErr: ErrLeaderConflict,
		},
		{
			name: "repeated guide",
			modify: func(f *fixture, req *Request) {
				req.Assignments = []domain.Assignment{{GuideID: f.anna.ID}, {GuideID: f.anna.ID}}
			},
			wantErr: ErrDuplicateGuide,
		},
		{
			name: "overlaps active schedule",
			modify: func(_ *fixture, req *Request) {
				req.ScheduledStart, req.ScheduledEnd = morning.Add(time.Hour), morning.Add(3*time.Hour)
			},
			wantErr: ErrScheduleOverlap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := f.request(morning.Add(4 * time.Hour))
			tt.modify(f, req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Len(t, f.db.SchedulesOf(f.activity.ID), 1)
			assert.Equal(t, 0, f.metrics.added)
		})
	}
}

func TestExecute_Overlaps(t *testing.T) {
	t.Run("touching boundary is not an overlap", func(t *testing.T) {
		f := newFixture()

		_, err := f.uc.Execute(context.Background(), f.request(morning.Add(2*time.Hour)))

		assert.NoError(t, err)
	})

	t.Run("inactive schedule may overlap", func(t *testing.T) {
		f := newFixture()
		req := f.request(morning)
		req.IsActive = ptr.Ptr(false)

		resp, err := f.uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.False(t, resp.Schedule.IsActive)
	})

	t.Run("conflict is counted", func(t *testing.T) {
		f := newFixture()

		_, err := f.uc.Execute(context.Background(), f.request(morning))

		assert.ErrorIs(t, err, ErrScheduleOverlap)
		assert.Equal(t, 1, f.metrics.conflicts)
	})
}

func TestExecute_ExplicitAssignments(t *testing.T) {
	f := newFixture()
	req := f.request(morning.Add(4 * time.Hour))
	req.Assignments = []domain.Assignment{{GuideID: f.boris.ID}, {GuideID: f.anna.ID, IsLeader: true}}
	req.AutoAssign = true

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, resp.Assignments, 2)
	assert.Equal(t, f.anna.ID, resp.Assignments[0].GuideID)
	assert.True(t, resp.Assignments[0].IsLeader)
	assert.Equal(t, 0, f.selector.Calls)
	assert.Len(t, f.db.Assignments(resp.Schedule.ID), 2)
}

func TestExecute_AutoAssign(t *testing.T) {
	f := newFixture()
	f.selector.Assignments = []domain.Assignment{{GuideID: f.anna.ID, IsLeader: true}}
	req := f.request(morning.Add(4 * time.Hour))
	req.Capacity = ptr.Ptr(6)
	req.AutoAssign = true

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, resp.Assignments, 1)
	assert.Equal(t, "Anna", resp.Assignments[0].GuideName)
	assert.Equal(t, []int{6}, f.selector.PartySizes)
}

func TestExecute_AutoAssignFailureKeepsSchedule(t *testing.T) {
	f := newFixture()
	f.selector.Err = domain.ErrNoGuidesAvailable
	req := f.request(morning.Add(4 * time.Hour))
	req.AutoAssign = true

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.ErrorIs(t, resp.AutoAssignError, assign_guides.ErrNoGuidesAvailable)
	assert.Empty(t, resp.Assignments)
	_, stored := f.db.Schedule(resp.Schedule.ID)
	assert.True(t, stored)
	assert.Equal(t, 1, f.metrics.added)
}
