package reservationapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

const (
	restaurantIDHeader = "X-Restaurant-ID"
	defaultSource      = "Online"
)

// Client клиент для работы с API бронирований
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента API бронирований
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetOperatingHours получает настройки смены ресторана
func (c *Client) GetOperatingHours(ctx context.Context, restaurantID int64) (domain.OperatingHours, error) {
	var settings Settings
	if err := c.do(ctx, http.MethodGet, restaurantID, "/api/v1/settings", nil, nil, &settings); err != nil {
		return domain.OperatingHours{}, err
	}
	return settings.toDomain(), nil
}

// ListActiveTables получает активные столы ресторана
func (c *Client) ListActiveTables(ctx context.Context, restaurantID int64) ([]*domain.Table, error) {
	query := url.Values{"active": []string{"true"}}

	var list tableList
	if err := c.do(ctx, http.MethodGet, restaurantID, "/api/v1/tables", query, nil, &list); err != nil {
		return nil, err
	}

	tables := make([]*domain.Table, 0, len(list.Tables))
	for _, t := range list.Tables {
		tables = append(tables, &domain.Table{
			ID:           t.ID,
			RestaurantID: t.RestaurantID,
			Label:        t.Label,
			Capacity:     t.Capacity,
			Active:       t.Active,
		})
	}
	return tables, nil
}

// GetReservationsFor получает активные бронирования стола на дату
func (c *Client) GetReservationsFor(ctx context.Context, restaurantID, tableID int64, date time.Time) ([]*domain.Reservation, error) {
	query := url.Values{
		"tableId": []string{strconv.FormatInt(tableID, 10)},
		"date":    []string{date.Format(domain.DateFormat)},
	}

	var list reservationList
	if err := c.do(ctx, http.MethodGet, restaurantID, "/api/v1/reservations", query, nil, &list); err != nil {
		return nil, err
	}

	result := make([]*domain.Reservation, 0, len(list.Reservations))
	for i := range list.Reservations {
		r, err := list.Reservations[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		result = append(result, r)
	}
	return result, nil
}

// GetAvailableSlots получает рассчитанную сервисом доступность стола на дату
func (c *Client) GetAvailableSlots(ctx context.Context, restaurantID, tableID int64, date time.Time) (*AvailableSlots, error) {
	path := fmt.Sprintf("/api/v1/tables/%d/available-slots", tableID)
	query := url.Values{"date": []string{date.Format(domain.DateFormat)}}

	var slots AvailableSlots
	if err := c.do(ctx, http.MethodGet, restaurantID, path, query, nil, &slots); err != nil {
		return nil, err
	}
	return &slots, nil
}

// CreateReservation создает бронирование из черновика
// ErrConflict означает, что слот заняли между выбором и отправкой
func (c *Client) CreateReservation(ctx context.Context, restaurantID int64, draft *domain.ReservationDraft) (*domain.Reservation, error) {
	body, err := newCreateReservationRequest(draft, defaultSource)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	var created Reservation
	if err := c.do(ctx, http.MethodPost, restaurantID, "/api/v1/reservations", nil, body, &created); err != nil {
		return nil, err
	}

	res, err := created.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	c.log.Info("CreateReservation: created reservation id=%d, table=%s, date=%s, time=%s",
		res.ID, res.TableLabel, created.Date, res.StartMinute)
	return res, nil
}

// UpdateReservation частично обновляет бронирование
func (c *Client) UpdateReservation(ctx context.Context, restaurantID, id int64, upd *domain.ReservationUpdate) (*domain.Reservation, error) {
	path := fmt.Sprintf("/api/v1/reservations/%d", id)

	var updated Reservation
	if err := c.do(ctx, http.MethodPut, restaurantID, path, nil, newUpdateReservationRequest(upd), &updated); err != nil {
		return nil, err
	}

	res, err := updated.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return res, nil
}

// do выполняет запрос и декодирует JSON ответ в out
func (c *Client) do(
	ctx context.Context,
	method string,
	restaurantID int64,
	path string,
	query url.Values,
	in interface{},
	out interface{},
) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(restaurantIDHeader, strconv.FormatInt(restaurantID, 10))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.log.Warn("%s %s - timed out: %v", method, path, err)
			return fmt.Errorf("%w: %s %s: %w", ErrTimeout, method, path, context.DeadlineExceeded)
		}
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, readMessage(resp.Body))
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, readMessage(resp.Body))
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readMessage(resp.Body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: %s %s: reading body: %w", ErrTimeout, method, path, context.DeadlineExceeded)
		}
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// readMessage достает message из тела ошибки, иначе возвращает тело как есть
func readMessage(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, 4096))
	var e ErrorResponse
	if err := json.Unmarshal(raw, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return string(raw)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
