package guideselection

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TourOps-BookingService/internal/domain"
	"github.com/m04kA/TourOps-BookingService/internal/testutil/fakes"
	"github.com/m04kA/TourOps-BookingService/pkg/ptr"
)

func TestSelector_SelectGuides(t *testing.T) {
	start := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		guides    []domain.Guide
		partySize int
		wantNames []string
		wantErr   error
	}{
		{
			name: "largest guide covers the party",
			guides: []domain.Guide{
				{Name: "small", MaxPartySize: ptr.Ptr(5), IsActive: true},
				{Name: "large", MaxPartySize: ptr.Ptr(20), IsActive: true},
			},
			partySize: 12,
			wantNames: []string{"large"},
		},
		{
			name: "several guides until covered",
			guides: []domain.Guide{
				{Name: "a", MaxPartySize: ptr.Ptr(8), IsActive: true},
				{Name: "b", MaxPartySize: ptr.Ptr(6), IsActive: true},
				{Name: "c", MaxPartySize: ptr.Ptr(4), IsActive: true},
			},
			partySize: 13,
			wantNames: []string{"a", "b"},
		},
		{
			name: "unbounded guide covers the rest",
			guides: []domain.Guide{
				{Name: "a", MaxPartySize: ptr.Ptr(5), IsActive: true},
				{Name: "any", IsActive: true},
			},
			partySize: 30,
			wantNames: []string{"a", "any"},
		},
		{
			name: "inactive guides are skipped",
			guides: []domain.Guide{
				{Name: "off", MaxPartySize: ptr.Ptr(50), IsActive: false},
			},
			partySize: 10,
			wantErr:   ErrNoGuidesAvailable,
		},
		{
			name: "not enough capacity",
			guides: []domain.Guide{
				{Name: "a", MaxPartySize: ptr.Ptr(3), IsActive: true},
			},
			partySize: 10,
			wantErr:   ErrNoGuidesAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := fakes.NewDB()
			schedule := db.AddSchedule(domain.Schedule{ActivityID: 1, ScheduledStart: start, ScheduledEnd: start.Add(2 * time.Hour), Capacity: tt.partySize, IsActive: true})
			for _, g := range tt.guides {
				db.AddGuide(g)
			}
			selector := NewSelector(fakes.NewScheduleRepo(db), fakes.NewGuideRepo(db), fakes.Logger{})

			result, err := selector.SelectGuides(context.Background(), schedule.ID, tt.partySize)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			names := make([]string, 0, len(result))
			for _, a := range result {
				names = append(names, a.GuideName)
			}
			assert.Equal(t, tt.wantNames, names)
			assert.True(t, result[0].IsLeader)
			assert.Equal(t, 1, domain.LeadersCount(result))
		})
	}
}

func TestSelector_SkipsGuidesBusyOnOverlappingSchedule(t *testing.T) {
	start := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	db := fakes.NewDB()
	target := db.AddSchedule(domain.Schedule{ActivityID: 1, ScheduledStart: start, ScheduledEnd: start.Add(2 * time.Hour), Capacity: 5, IsActive: true})
	busy := db.AddSchedule(domain.Schedule{ActivityID: 2, ScheduledStart: start.Add(time.Hour), ScheduledEnd: start.Add(3 * time.Hour), Capacity: 5, IsActive: true})
	taken := db.AddGuide(domain.Guide{Name: "taken", MaxPartySize: ptr.Ptr(10), IsActive: true})
	db.AddGuide(domain.Guide{Name: "free", MaxPartySize: ptr.Ptr(5), IsActive: true})
	db.AddAssignments(busy.ID, domain.Assignment{GuideID: taken.ID, IsLeader: true})
	selector := NewSelector(fakes.NewScheduleRepo(db), fakes.NewGuideRepo(db), fakes.Logger{})

	result, err := selector.SelectGuides(context.Background(), target.ID, 5)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "free", result[0].GuideName)
}

func TestSelector_UnknownSchedule(t *testing.T) {
	db := fakes.NewDB()
	selector := NewSelector(fakes.NewScheduleRepo(db), fakes.NewGuideRepo(db), fakes.Logger{})

	_, err := selector.SelectGuides(context.Background(), 7, 3)

	assert.ErrorIs(t, err, ErrScheduleNotFound)
}
