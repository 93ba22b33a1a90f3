package update_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/TourOps-BookingService/internal/api/handlers"
	updateBooking "github.com/m04kA/TourOps-BookingService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID    = "некорректный ID бронирования"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgBookingNotFound     = "бронирование не найдено"
	msgBookingCancelled    = "отмененное бронирование нельзя изменить"
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
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrInvalidCustomerName):
			h.logger.Warn("PATCH /bookings/{id} - Invalid customer name: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidCustomerName)

		case errors.Is(err, updateBooking.ErrInvalidPartySize):
			h.logger.Warn("PATCH /bookings/{id} - Invalid party size: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidPartySize)

		case errors.Is(err, updateBooking.ErrInvalidCategoryCounts):
			h.logger.Warn("PATCH /bookings/{id} - Negative category counts: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidCounts)

		case errors.Is(err, updateBooking.ErrPassengerCountRequired):
			h.logger.Warn("PATCH /bookings/{id} - Passenger count required: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgPassengerCount)

		case errors.Is(err, updateBooking.ErrInvalidCommission):
			h.logger.Warn("PATCH /bookings/{id} - Invalid commission: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidCommission)

		case errors.Is(err, updateBooking.ErrInvalidContacts):
			h.logger.Warn("PATCH /bookings/{id} - Invalid contacts: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidContacts)

		case errors.Is(err, updateBooking.ErrInvalidStatus):
			h.logger.Warn("PATCH /bookings/{id} - Invalid status: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id} - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateBooking.ErrCountMismatch):
			h.logger.Warn("PATCH /bookings/{id} - Count mismatch: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondCountMismatch(w, msgCountMismatch, err)

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrBookingCancelled):
			h.logger.Warn("PATCH /bookings/{id} - Booking cancelled: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgBookingCancelled)

		case errors.Is(err, updateBooking.ErrScheduleNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Schedule not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, updateBooking.ErrScheduleInactive):
			h.logger.Warn("PATCH /bookings/{id} - Schedule inactive: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgScheduleInactive)

		case errors.Is(err, updateBooking.ErrCompanyNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Company not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, updateBooking.ErrCapacityExceeded):
			h.logger.Warn("PATCH /bookings/{id} - Capacity exceeded: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondCapacityExceeded(w, msgCapacityExceeded, err)

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id} - Booking updated successfully: booking_id=%d, schedule_id=%d, available=%d",
		bookingID, result.Booking.ActivityScheduleID, result.AvailableSpaces)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
