package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

// RestaurantIDHeader заголовок, задающий ресторан, в рамках которого выполняется запрос
const RestaurantIDHeader = "X-Restaurant-ID"

const (
	msgMissingRestaurantID = "отсутствует заголовок X-Restaurant-ID"
	msgInvalidRestaurantID = "некорректный ID ресторана"
)

type restaurantIDKey struct{}

// RestaurantScope читает X-Restaurant-ID и кладет его в контекст запроса
func RestaurantScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(RestaurantIDHeader)
		if raw == "" {
			handlers.RespondBadRequest(w, msgMissingRestaurantID)
			return
		}

		restaurantID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || restaurantID <= 0 {
			handlers.RespondBadRequest(w, msgInvalidRestaurantID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithRestaurantID(r.Context(), restaurantID)))
	})
}

// WithRestaurantID возвращает контекст с ID ресторана
func WithRestaurantID(ctx context.Context, restaurantID int64) context.Context {
	return context.WithValue(ctx, restaurantIDKey{}, restaurantID)
}

// GetRestaurantID извлекает ID ресторана из контекста
func GetRestaurantID(ctx context.Context) (int64, bool) {
	restaurantID, ok := ctx.Value(restaurantIDKey{}).(int64)
	return restaurantID, ok
}
