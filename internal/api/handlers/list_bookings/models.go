package list_bookings

import (
	"net/http"

	"github.com/m04kA/TourOps-BookingService/internal/api/handlers"
	"github.com/m04kA/TourOps-BookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// companyID из пути имеет приоритет над query параметром companyId
func ToServiceRequest(r *http.Request, companyID *int64) (*models.ListBookingsRequest, error) {
	page, limit, err := handlers.QueryPagination(r)
	if err != nil {
		return nil, err
	}

	scheduleID, err := handlers.QueryInt64(r, "activityScheduleId")
	if err != nil {
		return nil, err
	}

	if companyID == nil {
		companyID, err = handlers.QueryInt64(r, "companyId")
		if err != nil {
			return nil, err
		}
	}

	return &models.ListBookingsRequest{
		Status:             handlers.QueryString(r, "status"),
		ActivityScheduleID: scheduleID,
		CompanyID:          companyID,
		Page:               page,
		Limit:              limit,
	}, nil
}
