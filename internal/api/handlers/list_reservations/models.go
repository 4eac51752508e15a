package list_reservations

import (
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// tableId + date дают набор бронирований, по которому считается доступность стола
func ToServiceRequest(restaurantID int64, r *http.Request) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{RestaurantID: restaurantID}

	tableID, err := handlers.QueryInt64(r, "tableId")
	if err != nil {
		return nil, err
	}
	req.TableID = tableID

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		return nil, err
	}
	req.Date = date

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	includeInactive, err := handlers.QueryBool(r, "includeInactive")
	if err != nil {
		return nil, fmt.Errorf("invalid includeInactive value: %w", err)
	}
	req.IncludeInactive = includeInactive

	return req, nil
}
