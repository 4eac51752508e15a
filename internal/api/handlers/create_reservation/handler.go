package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

const (
	msgMissingRestaurantID = "отсутствует ID ресторана"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidRequest      = "некорректная дата или время бронирования"
	msgTableNotFound       = "стол не найден"
	msgTableNotSuitable    = "стол неактивен или не вмещает компанию гостей"
	msgInvalidDate         = "нельзя забронировать на прошедшую дату"
	msgInvalidTimeSlot     = "выбранное время не совпадает ни с одним слотом смены"
	msgSlotUnavailable     = "выбранное время уже занято"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := middleware.GetRestaurantID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing restaurant ID")
		handlers.RespondBadRequest(w, msgMissingRestaurantID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(restaurantID)
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotUnavailable):
			h.logger.Warn("POST /reservations - Slot unavailable: restaurant_id=%d, date=%s, time=%s",
				restaurantID, req.Date, useCaseReq.StartTime)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, createReservation.ErrTableNotFound):
			h.logger.Warn("POST /reservations - Table not found: restaurant_id=%d", restaurantID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, createReservation.ErrTableNotSuitable):
			h.logger.Warn("POST /reservations - Table not suitable: restaurant_id=%d, party_size=%d", restaurantID, req.PartySize)
			handlers.RespondBadRequest(w, msgTableNotSuitable)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrInvalidTimeSlot):
			h.logger.Warn("POST /reservations - Invalid time slot: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: restaurant_id=%d, error=%v", restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: id=%d, table=%s, date=%s, time=%s",
		result.ID, result.TableLabel, req.Date, result.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
