package update_table

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
	msgInvalidTableID      = "некорректный ID стола"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgNotFound            = "стол не найден"
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

// Handle PUT /api/v1/tables/{tableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := middleware.GetRestaurantID(r.Context())
	if !ok {
		h.logger.Warn("PUT /tables/{id} - Missing restaurant ID")
		handlers.RespondBadRequest(w, msgMissingRestaurantID)
		return
	}

	tableID, err := handlers.PathInt64(r, "tableId")
	if err != nil {
		h.logger.Warn("PUT /tables/{id} - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	var req models.UpdateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tables/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), restaurantID, tableID, &req)
	if err != nil {
		switch {
		case errors.Is(err, tables.ErrTableNotFound):
			h.logger.Warn("PUT /tables/{id} - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tables.ErrDuplicateLabel):
			h.logger.Warn("PUT /tables/{id} - Duplicate label: table_id=%d", tableID)
			handlers.RespondConflict(w, msgDuplicateLabel)

		case errors.Is(err, tables.ErrInvalidInput):
			h.logger.Warn("PUT /tables/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /tables/{id} - Failed to update table: table_id=%d, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /tables/{id} - Table updated successfully: table_id=%d, active=%t", tableID, result.Active)
	handlers.RespondJSON(w, http.StatusOK, result)
}
