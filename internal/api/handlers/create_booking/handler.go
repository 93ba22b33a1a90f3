package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/TourOps-BookingService/internal/api/handlers"
	"github.com/m04kA/TourOps-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/TourOps-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgScheduleNotFound    = "проведение не найдено"
	msgScheduleInactive    = "проведение выключено"
	msgCompanyNotFound     = "компания не найдена"
	msgCapacityExceeded    = "на проведении недостаточно свободных мест"
	msgCountMismatch       = "сумма взрослых, детей и пенсионеров не равна numberOfPeople"
	msgInvalidInput        = "некорректные данные бронирования"
	msgInvalidCustomerName = "укажите имя клиента (не более 200 символов)"
	msgInvalidPartySize    = "количество человек должно быть положительным числом"
	msgInvalidCounts       = "количество взрослых, детей и пенсионеров не может быть отрицательным"
	msgPassengerCount      = "при трансфере укажите количество пассажиров, не меньше 1"
	msgInvalidCommission   = "комиссия должна быть в диапазоне от 0 до 100"
	msgInvalidContacts     = "некорректный email или телефон клиента"
	msgInvalidStatus       = "недопустимый статус бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Автор бронирования берется из заголовка, проверенного middleware Auth
	var createdBy *int64
	if userID, ok := middleware.GetUserID(r.Context()); ok {
		createdBy = &userID
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(createdBy))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidCustomerName):
			h.logger.Warn("POST /bookings - Invalid customer name: schedule_id=%d, error=%v", req.ActivityScheduleID, err)
			handlers.RespondBadRequest(w, msgInvalidCustomerName)

		case errors.Is(err, createBooking.ErrInvalidPartySize):
			h.logger.Warn("POST /bookings - Invalid party size: schedule_id=%d, error=%v", req.ActivityScheduleID, err)
			handlers.RespondBadRequest(w, msgInvalidPartySize)

		case errors.Is(err, createBooking.ErrInvalidCategoryCounts):
			h.logger.Warn("POST /bookings - Negative category counts: schedule_id=%d, error=%v", req.ActivityScheduleID, err)
			handlers.RespondBadRequest(w, msgInvalidCounts)

		case errors.Is(err, createBooking.ErrPassengerCountRequired):
			h.logger.Warn("POST /bookings - Passenger count required: schedule_id=%d, error=%v", req.ActivityScheduleID, err)
			handlers.RespondBadRequest(w, msgPassengerCount)

		case errors.Is(err, createBooking.ErrInvalidCommission):
			h.logger.Warn("POST /bookings - Invalid commission: schedule_id=%d, error=%v", req.ActivityScheduleID, err)
			handlers.RespondBadRequest(w, msgInvalidCommission)

		case errors.Is(err, createBooking.ErrInvalidContacts):
			h.logger.Warn("POST /bookings - Invalid contacts: schedule_id=%d, error=%v", req.ActivityScheduleID, err)
			handlers.RespondBadRequest(w, msgInvalidContacts)

		case errors.Is(err, createBooking.ErrInvalidStatus):
			h.logger.Warn("POST /bookings - Invalid status: schedule_id=%d, error=%v", req.ActivityScheduleID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: schedule_id=%d, error=%v", req.ActivityScheduleID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrCountMismatch):
			h.logger.Warn("POST /bookings - Count mismatch: schedule_id=%d, error=%v", req.ActivityScheduleID, err)
			handlers.RespondCountMismatch(w, msgCountMismatch, err)

		case errors.Is(err, createBooking.ErrScheduleNotFound):
			h.logger.Warn("POST /bookings - Schedule not found: schedule_id=%d", req.ActivityScheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, createBooking.ErrScheduleInactive):
			h.logger.Warn("POST /bookings - Schedule inactive: schedule_id=%d", req.ActivityScheduleID)
			handlers.RespondConflict(w, msgScheduleInactive)

		case errors.Is(err, createBooking.ErrCompanyNotFound):
			h.logger.Warn("POST /bookings - Company not found: schedule_id=%d", req.ActivityScheduleID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: schedule_id=%d, error=%v", req.ActivityScheduleID, err)
			handlers.RespondCapacityExceeded(w, msgCapacityExceeded, err)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: schedule_id=%d, error=%v", req.ActivityScheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, schedule_id=%d, available=%d",
		result.Booking.ID, result.Booking.ActivityScheduleID, result.AvailableSpaces)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
