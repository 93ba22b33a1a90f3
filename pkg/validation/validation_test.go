package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name      string  `json:"name" validate:"required"`
	PartySize int     `json:"partySize" validate:"gt=0"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Start     string  `json:"startTime" validate:"hhmm"`
	Date      string  `json:"date" validate:"date"`
}

func TestStruct(t *testing.T) {
	valid := sample{Name: "Tour", PartySize: 5, Start: "09:30", Date: "2024-05-01"}
	require.NoError(t, Struct(valid))

	tests := []struct {
		name    string
		mutate  func(s *sample)
		message string
	}{
		{name: "missing name", mutate: func(s *sample) { s.Name = "" }, message: "name is required"},
		{name: "zero party", mutate: func(s *sample) { s.PartySize = 0 }, message: "partySize must satisfy gt=0"},
		{name: "bad email", mutate: func(s *sample) { bad := "nope"; s.Email = &bad }, message: "email must be a valid email"},
		{name: "bad time", mutate: func(s *sample) { s.Start = "9:30" }, message: "startTime must be in HH:MM format"},
		{name: "bad date", mutate: func(s *sample) { s.Date = "01.05.2024" }, message: "date must be in YYYY-MM-DD format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)

			err := Struct(s)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
