package list_availability

import (
	"net/http"

	"github.com/m04kA/TourOps-BookingService/internal/api/handlers"
	getAvailability "github.com/m04kA/TourOps-BookingService/internal/usecase/get_availability"
)

// ToUseCaseRequest формирует запрос к use case из query параметров
// По умолчанию возвращаются только активные проведения
func ToUseCaseRequest(r *http.Request, activityID *int64) (*getAvailability.ListRequest, error) {
	var err error
	if activityID == nil {
		activityID, err = handlers.QueryInt64(r, "activityId")
		if err != nil {
			return nil, err
		}
	}

	onlyActive, err := handlers.QueryBool(r, "onlyActive")
	if err != nil {
		return nil, err
	}

	upcoming, err := handlers.QueryBool(r, "upcoming")
	if err != nil {
		return nil, err
	}

	req := &getAvailability.ListRequest{
		ActivityID: activityID,
		StartDate:  r.URL.Query().Get("startDate"),
		EndDate:    r.URL.Query().Get("endDate"),
		OnlyActive: true,
	}
	if onlyActive != nil {
		req.OnlyActive = *onlyActive
	}
	if upcoming != nil {
		req.Upcoming = *upcoming
	}

	return req, nil
}
