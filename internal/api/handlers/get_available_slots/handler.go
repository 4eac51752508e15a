package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
)

const (
	msgMissingRestaurantID = "отсутствует ID ресторана"
	msgInvalidTableID      = "некорректный ID стола"
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgTableNotFound       = "стол не найден"
	msgTableInactive       = "стол неактивен"
	msgInvalidSettings     = "некорректные настройки смены ресторана"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tables/{tableId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := middleware.GetRestaurantID(r.Context())
	if !ok {
		h.logger.Warn("GET /tables/{id}/available-slots - Missing restaurant ID")
		handlers.RespondBadRequest(w, msgMissingRestaurantID)
		return
	}

	tableID, err := handlers.PathInt64(r, "tableId")
	if err != nil {
		h.logger.Warn("GET /tables/{id}/available-slots - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /tables/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if date == nil {
		h.logger.Warn("GET /tables/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		RestaurantID: restaurantID,
		TableID:      tableID,
		Date:         *date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrTableNotFound):
			h.logger.Warn("GET /tables/{id}/available-slots - Table not found: restaurant_id=%d, table_id=%d", restaurantID, tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, getAvailableSlots.ErrTableInactive):
			h.logger.Warn("GET /tables/{id}/available-slots - Table inactive: restaurant_id=%d, table_id=%d", restaurantID, tableID)
			handlers.RespondError(w, http.StatusConflict, msgTableInactive)

		case errors.Is(err, getAvailableSlots.ErrInvalidSettings):
			h.logger.Error("GET /tables/{id}/available-slots - Invalid settings: restaurant_id=%d, error=%v", restaurantID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidSettings)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /tables/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /tables/{id}/available-slots - Failed to get slots: restaurant_id=%d, table_id=%d, error=%v",
				restaurantID, tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tables/{id}/available-slots - Slots retrieved successfully: restaurant_id=%d, table_id=%d, available=%d/%d",
		restaurantID, tableID, result.AvailableCount, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
