package delete_table

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/tables"
)

const (
	msgMissingRestaurantID = "отсутствует ID ресторана"
	msgInvalidTableID      = "некорректный ID стола"
	msgNotFound            = "стол не найден"
	msgTableInUse          = "на стол есть бронирования, деактивируйте его вместо удаления"
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

// Handle DELETE /api/v1/tables/{tableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := middleware.GetRestaurantID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /tables/{id} - Missing restaurant ID")
		handlers.RespondBadRequest(w, msgMissingRestaurantID)
		return
	}

	tableID, err := handlers.PathInt64(r, "tableId")
	if err != nil {
		h.logger.Warn("DELETE /tables/{id} - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	if err := h.service.Delete(r.Context(), restaurantID, tableID); err != nil {
		switch {
		case errors.Is(err, tables.ErrTableNotFound):
			h.logger.Warn("DELETE /tables/{id} - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tables.ErrTableInUse):
			h.logger.Warn("DELETE /tables/{id} - Table in use: table_id=%d", tableID)
			handlers.RespondConflict(w, msgTableInUse)

		default:
			h.logger.Error("DELETE /tables/{id} - Failed to delete table: table_id=%d, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tables/{id} - Table deleted successfully: table_id=%d", tableID)
	handlers.RespondNoContent(w)
}
