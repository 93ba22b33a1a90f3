package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAssignments(t *testing.T) {
	tests := []struct {
		name        string
		assignments []Assignment
		wantErr     error
	}{
		{name: "empty", assignments: nil},
		{
			name: "single leader",
			assignments: []Assignment{
				{GuideID: 1, IsLeader: true},
				{GuideID: 2},
			},
		},
		{
			name:        "no leader",
			assignments: []Assignment{{GuideID: 1}, {GuideID: 2}},
		},
		{
			name: "two leaders",
			assignments: []Assignment{
				{GuideID: 1, IsLeader: true},
				{GuideID: 2, IsLeader: true},
			},
			wantErr: ErrMultipleLeaders,
		},
		{
			name:        "duplicate guide",
			assignments: []Assignment{{GuideID: 1, IsLeader: true}, {GuideID: 1}},
			wantErr:     ErrDuplicateGuide,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAssignments(tt.assignments)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNormalizePage(t *testing.T) {
	page, limit := NormalizePage(0, 500)
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, MaxLimit, limit)

	page, limit = NormalizePage(3, 0)
	assert.Equal(t, 3, page)
	assert.Equal(t, DefaultLimit, limit)
}
