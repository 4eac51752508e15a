package draft

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/schedule"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// DefaultTimeout is the per-call budget for backend requests
const DefaultTimeout = 10 * time.Second

// Coordinator holds one in-progress reservation and enforces the
// table -> date -> time selection order.
//
// A Coordinator belongs to a single booking session and is not safe for
// concurrent use. Only Fetch may run on another goroutine; its result must be
// handed back through ApplyAvailability by the owner.
type Coordinator struct {
	id           string
	backend      Backend
	restaurantID int64
	hours        domain.OperatingHours
	timeout      time.Duration
	timeProvider TimeProvider
	logger       Logger

	state      State
	draft      domain.ReservationDraft
	available  schedule.SlotSet
	generation uint64
	created    *domain.Reservation

	subscribers []subscriber
	nextSubID   int
}

// NewCoordinator starts an empty booking session.
// A non-positive timeout falls back to DefaultTimeout.
func NewCoordinator(
	backend Backend,
	restaurantID int64,
	hours domain.OperatingHours,
	timeout time.Duration,
	logger Logger,
) *Coordinator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Coordinator{
		id:           uuid.NewString(),
		backend:      backend,
		restaurantID: restaurantID,
		hours:        hours,
		timeout:      timeout,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		state:        StateEmpty,
		draft:        domain.ReservationDraft{Status: domain.StatusConfirmed},
	}
}

// WithTimeProvider replaces the clock used for date checks and dropping started slots
func (c *Coordinator) WithTimeProvider(tp TimeProvider) *Coordinator {
	c.timeProvider = tp
	return c
}

// ID returns the session identifier used in logs
func (c *Coordinator) ID() string {
	return c.id
}

// State returns the current session state
func (c *Coordinator) State() State {
	return c.state
}

// Draft returns a copy of the current draft
func (c *Coordinator) Draft() domain.ReservationDraft {
	return c.draft.Clone()
}

// Reservation returns the created reservation after a successful Submit
func (c *Coordinator) Reservation() *domain.Reservation {
	return c.created
}

// Subscribe registers fn for state change events and returns a function that removes it
func (c *Coordinator) Subscribe(fn func(Event)) (unsubscribe func()) {
	c.nextSubID++
	id := c.nextSubID
	c.subscribers = append(c.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, s := range c.subscribers {
			if s.id == id {
				c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
				return
			}
		}
	}
}

// SetGuest sets the guest contact fields. Email may be empty.
func (c *Coordinator) SetGuest(name, phone, email string) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if len(name) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guest name is longer than %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	c.draft.GuestName = name
	c.draft.Phone = phone
	c.draft.Email = nil
	if email = strings.TrimSpace(email); email != "" {
		c.draft.Email = ptr.Ptr(email)
	}

	c.setState(deriveState(&c.draft))
	c.emit(EventGuestUpdated, nil)
	return nil
}

// SetPartySize sets the number of guests.
// A selected table that no longer seats the party is deselected.
func (c *Coordinator) SetPartySize(n int) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}
	if n <= 0 || n > domain.MaxPartySize {
		return fmt.Errorf("%w: party size must be between 1 and %d", ErrInvalidInput, domain.MaxPartySize)
	}

	c.draft.PartySize = n
	if t := c.draft.SelectedTable; t != nil && !t.Fits(n) {
		c.logger.Info("Draft %s: table %s does not seat %d guests, deselecting", c.id, t.Label, n)
		c.resetSelection()
		c.draft.SelectedTable = nil
	}

	c.setState(deriveState(&c.draft))
	c.emit(EventGuestUpdated, nil)
	return nil
}

// SetNotes sets free-form notes, an empty string removes them
func (c *Coordinator) SetNotes(notes string) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}

	notes = strings.TrimSpace(notes)
	if len(notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	c.draft.Notes = nil
	if notes != "" {
		c.draft.Notes = ptr.Ptr(notes)
	}
	c.emit(EventGuestUpdated, nil)
	return nil
}

// SetStatus sets the initial status, Confirmed or Pending
func (c *Coordinator) SetStatus(status domain.ReservationStatus) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}
	if !status.IsInitial() {
		return fmt.Errorf("%w: status %q is not allowed for a new reservation", ErrInvalidInput, status)
	}

	c.draft.Status = status
	c.emit(EventGuestUpdated, nil)
	return nil
}

// SelectTable selects a table and clears any selected time
func (c *Coordinator) SelectTable(table *domain.Table) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}
	if table == nil {
		return fmt.Errorf("%w: table is required", ErrInvalidInput)
	}
	if !table.Active || (c.draft.PartySize > 0 && table.Capacity < c.draft.PartySize) {
		return fmt.Errorf("%w: table %s (capacity %d, active %t), party of %d",
			ErrTableNotSuitable, table.Label, table.Capacity, table.Active, c.draft.PartySize)
	}

	selected := *table
	c.resetSelection()
	c.draft.SelectedTable = &selected

	c.setState(deriveState(&c.draft))
	c.emit(EventTableSelected, nil)
	return nil
}

// SetDate changes the reservation date and clears any selected time
func (c *Coordinator) SetDate(date time.Time) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if domain.IsDateInPast(date, c.timeProvider.Now()) {
		return fmt.Errorf("%w: date %s is in the past", ErrInvalidInput, date.Format(domain.DateFormat))
	}

	c.resetSelection()
	c.draft.Date = domain.DateOnly(date)

	c.setState(deriveState(&c.draft))
	c.emit(EventDateChanged, nil)
	return nil
}

// SelectTime selects a start time from the resolved free set
func (c *Coordinator) SelectTime(minute types.MinuteOfDay) error {
	switch c.state {
	case StateTableSelected, StateTimeSelected, StateSubmittable:
	default:
		return fmt.Errorf("%w: select a table before a time (state %s)", ErrInvalidState, c.state)
	}
	if c.available == nil {
		return fmt.Errorf("%w: availability for the selected table and date is not loaded", ErrSlotUnavailable)
	}
	if !c.available.Contains(minute) {
		return fmt.Errorf("%w: %s", ErrSlotUnavailable, minute)
	}

	c.draft.SelectedTime = ptr.Ptr(minute)

	c.setState(deriveState(&c.draft))
	c.emit(EventTimeSelected, nil)
	return nil
}

// Submit sends the draft to the backend. It is only valid in StateSubmittable
// and leaves the session Submittable when the backend rejects it.
func (c *Coordinator) Submit(ctx context.Context) (*domain.Reservation, error) {
	if c.state != StateSubmittable {
		return nil, fmt.Errorf("%w: cannot submit in state %s", ErrInvalidState, c.state)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	submitted := c.draft.Clone()
	res, err := c.backend.CreateReservation(callCtx, c.restaurantID, &submitted)
	if err != nil {
		if isTimeout(err) {
			err = fmt.Errorf("%w: create reservation: %v", ErrTimeout, err)
		} else {
			err = fmt.Errorf("%w: %v", ErrSubmitFailed, err)
		}
		c.logger.Warn("Draft %s: submit failed: %v", c.id, err)
		c.emit(EventSubmitFailed, err)
		return nil, err
	}

	c.created = res
	c.generation++
	c.setState(StateSubmitted)
	c.logger.Info("Draft %s: submitted as reservation id=%d", c.id, res.ID)
	c.emit(EventSubmitted, nil)
	return res, nil
}

// Cancel discards the session
func (c *Coordinator) Cancel() error {
	if err := c.ensureOpen(); err != nil {
		return err
	}

	c.generation++
	c.available = nil
	c.setState(StateCancelled)
	c.emit(EventCancelled, nil)
	return nil
}

func (c *Coordinator) ensureOpen() error {
	if c.state.IsTerminal() {
		return fmt.Errorf("%w: session is %s", ErrInvalidState, c.state)
	}
	return nil
}

// resetSelection drops the time and availability tied to the current table/date pair
func (c *Coordinator) resetSelection() {
	c.generation++
	c.available = nil
	c.draft.SelectedTime = nil
}

func (c *Coordinator) setState(s State) {
	if s != c.state {
		c.logger.Info("Draft %s: %s -> %s", c.id, c.state, s)
	}
	c.state = s
}

func (c *Coordinator) emit(kind EventKind, err error) {
	if len(c.subscribers) == 0 {
		return
	}
	ev := Event{Kind: kind, State: c.state, Draft: c.draft.Clone(), Err: err}
	for _, s := range append([]subscriber(nil), c.subscribers...) {
		s.fn(ev)
	}
}
