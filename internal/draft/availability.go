package draft

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/schedule"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// AvailabilityRequest tags one availability fetch with the selection it was issued for
type AvailabilityRequest struct {
	Generation uint64
	TableID    int64
	Date       time.Time
}

// AvailabilityResult is the outcome of Fetch, applied with ApplyAvailability
type AvailabilityResult struct {
	Request AvailabilityRequest
	Free    []types.MinuteOfDay
	Err     error
}

// BeginRefresh issues a tagged request for the current table and date.
// Any request issued earlier becomes stale.
func (c *Coordinator) BeginRefresh() (AvailabilityRequest, error) {
	if c.state.IsTerminal() {
		return AvailabilityRequest{}, fmt.Errorf("%w: session is %s", ErrInvalidState, c.state)
	}
	if c.draft.SelectedTable == nil || c.draft.Date.IsZero() {
		return AvailabilityRequest{}, fmt.Errorf("%w: table and date must be selected first", ErrInvalidState)
	}

	c.generation++
	return AvailabilityRequest{
		Generation: c.generation,
		TableID:    c.draft.SelectedTable.ID,
		Date:       c.draft.Date,
	}, nil
}

// Fetch loads reservations for the request and resolves free slots.
// It does not touch session state and may run on another goroutine.
func (c *Coordinator) Fetch(ctx context.Context, req AvailabilityRequest) AvailabilityResult {
	result := AvailabilityResult{Request: req}

	candidates, err := c.candidates(req.Date)
	if err != nil {
		result.Err = err
		return result
	}
	if len(candidates) == 0 {
		result.Free = []types.MinuteOfDay{}
		return result
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reservations, err := c.backend.GetReservationsFor(callCtx, c.restaurantID, req.TableID, req.Date)
	if err != nil {
		if isTimeout(err) {
			result.Err = fmt.Errorf("%w: availability for table %d: %v", ErrTimeout, req.TableID, err)
		} else {
			result.Err = fmt.Errorf("%w: availability for table %d: %v", ErrBackend, req.TableID, err)
		}
		return result
	}

	result.Free = schedule.Resolve(req.TableID, req.Date, candidates, reservations, c.hours).Sorted()
	return result
}

// ApplyAvailability stores a fetched result if it still matches the current selection.
// A failed result clears the free set and any selected time.
func (c *Coordinator) ApplyAvailability(res AvailabilityResult) error {
	if !c.isCurrent(res.Request) {
		c.logger.Warn("Draft %s: discarding stale availability for table=%d, date=%s",
			c.id, res.Request.TableID, res.Request.Date.Format(domain.DateFormat))
		return ErrStaleAvailability
	}

	if res.Err != nil {
		c.available = nil
		c.draft.SelectedTime = nil
		c.setState(deriveState(&c.draft))
		c.logger.Warn("Draft %s: availability fetch failed: %v", c.id, res.Err)
		c.emit(EventAvailabilityFailed, res.Err)
		return res.Err
	}

	c.available = schedule.NewSlotSet(res.Free...)
	if c.draft.SelectedTime != nil && !c.available.Contains(*c.draft.SelectedTime) {
		c.logger.Info("Draft %s: selected time %s is no longer free", c.id, *c.draft.SelectedTime)
		c.draft.SelectedTime = nil
		c.setState(deriveState(&c.draft))
		c.emit(EventTimeCleared, nil)
	}

	c.emit(EventAvailabilityUpdated, nil)
	return nil
}

// RefreshAvailability fetches and applies availability for the current table and date
func (c *Coordinator) RefreshAvailability(ctx context.Context) error {
	req, err := c.BeginRefresh()
	if err != nil {
		return err
	}
	return c.ApplyAvailability(c.Fetch(ctx, req))
}

// AvailableTimes returns the free slots for the current selection, nil until resolved
func (c *Coordinator) AvailableTimes() []types.MinuteOfDay {
	if c.available == nil {
		return nil
	}
	return c.available.Sorted()
}

func (c *Coordinator) isCurrent(req AvailabilityRequest) bool {
	if c.state.IsTerminal() || req.Generation != c.generation || c.draft.SelectedTable == nil {
		return false
	}
	return req.TableID == c.draft.SelectedTable.ID && domain.IsSameDay(req.Date, c.draft.Date)
}

// candidates enumerates the shift for date; a past date has no slots, today drops started ones
func (c *Coordinator) candidates(date time.Time) ([]types.MinuteOfDay, error) {
	now := c.timeProvider.Now()
	if domain.IsDateInPast(date, now) {
		return nil, nil
	}

	slots, err := schedule.Enumerate(c.hours)
	if err != nil {
		return nil, err
	}

	if domain.IsSameDay(date, now) {
		slots = schedule.DropStarted(slots, types.MinuteOfDay(now.Hour()*60+now.Minute()))
	}
	return slots, nil
}

func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
