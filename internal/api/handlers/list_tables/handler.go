package list_tables

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
)

const (
	msgMissingRestaurantID = "отсутствует ID ресторана"
	msgInvalidActive       = "некорректное значение параметра active"
)

type Handler struct {
	service TableService
	logger  Logger
}

func NewHandler(service TableService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tables
// Query params: active (опционально, true - только активные столы)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := middleware.GetRestaurantID(r.Context())
	if !ok {
		h.logger.Warn("GET /tables - Missing restaurant ID")
		handlers.RespondBadRequest(w, msgMissingRestaurantID)
		return
	}

	activeOnly, err := handlers.QueryBool(r, "active")
	if err != nil {
		h.logger.Warn("GET /tables - Invalid active flag: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActive)
		return
	}

	result, err := h.service.List(r.Context(), restaurantID, activeOnly)
	if err != nil {
		h.logger.Error("GET /tables - Failed to list tables: restaurant_id=%d, error=%v", restaurantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tables - Tables retrieved successfully: restaurant_id=%d, count=%d", restaurantID, len(result.Tables))
	handlers.RespondJSON(w, http.StatusOK, result)
}
