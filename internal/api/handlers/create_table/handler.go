package create_table

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/tables"
	"github.com/m04kA/SMC-ReservationService/internal/service/tables/models"
)

const (
	msgMissingRestaurantID = "отсутствует ID ресторана"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgDuplicateLabel      = "стол с таким названием уже существует"
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

// Handle POST /api/v1/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := middleware.GetRestaurantID(r.Context())
	if !ok {
		h.logger.Warn("POST /tables - Missing restaurant ID")
		handlers.RespondBadRequest(w, msgMissingRestaurantID)
		return
	}

	var req models.CreateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tables - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), restaurantID, &req)
	if err != nil {
		switch {
		case errors.Is(err, tables.ErrDuplicateLabel):
			h.logger.Warn("POST /tables - Duplicate label: restaurant_id=%d, label=%s", restaurantID, req.Label)
			handlers.RespondConflict(w, msgDuplicateLabel)

		case errors.Is(err, tables.ErrInvalidInput):
			h.logger.Warn("POST /tables - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /tables - Failed to create table: restaurant_id=%d, error=%v", restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tables - Table created successfully: id=%d, label=%s", result.ID, result.Label)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
