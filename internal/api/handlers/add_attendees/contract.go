package add_attendees

import (
	"context"

	addAttendees "github.com/m04kA/TourOps-BookingService/internal/usecase/add_attendees"
)

type AddAttendeesUseCase interface {
	Execute(ctx context.Context, req *addAttendees.Request) (*addAttendees.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
