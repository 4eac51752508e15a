package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ReservationService/internal/config"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/draft"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/reservationapi"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type warnLogger interface {
	Warn(format string, v ...interface{})
}

type bookOptions struct {
	restaurantID int64
	guest        string
	phone        string
	email        string
	partySize    int
	date         string
	table        string
	at           string
	status       string
	notes        string
	serverSide   bool
}

func newBookCmd(configPath *string) *cobra.Command {
	opts := bookOptions{}

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a table through the reservation API",
		Long: `Walks a booking session against a running service: loads the shift settings and tables,
selects the table and date, resolves free slots and submits the reservation.
Without --time only the free slots are printed.`,
		Example: `  reservation-service book --guest "Ann Lee" --phone +15550100 --party 2 --date 2026-10-20
  reservation-service book --guest "Ann Lee" --phone +15550100 --party 2 --date 2026-10-20 --table A1 --time "7:30 PM"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadRuntime(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			if !cmd.Flags().Changed("restaurant") {
				opts.restaurantID = cfg.Client.RestaurantID
			}
			return book(cmd, cfg, log, opts)
		},
	}

	cmd.Flags().Int64Var(&opts.restaurantID, "restaurant", 0, "restaurant id (default from config)")
	cmd.Flags().StringVar(&opts.guest, "guest", "", "guest name")
	cmd.Flags().StringVar(&opts.phone, "phone", "", "guest phone")
	cmd.Flags().StringVar(&opts.email, "email", "", "guest email")
	cmd.Flags().IntVar(&opts.partySize, "party", 0, "party size")
	cmd.Flags().StringVar(&opts.date, "date", "", "reservation date, YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.table, "table", "", "table label (default: first active table that fits)")
	cmd.Flags().StringVar(&opts.at, "time", "", "start time, e.g. \"7:30 PM\"")
	cmd.Flags().StringVar(&opts.status, "status", string(domain.StatusConfirmed), "initial status, Confirmed or Pending")
	cmd.Flags().StringVar(&opts.notes, "notes", "", "notes for the staff")
	cmd.Flags().BoolVar(&opts.serverSide, "server-side", false, "print free slots as computed by the service")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func book(cmd *cobra.Command, cfg *config.Config, log *logger.Logger, opts bookOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	date, err := time.ParseInLocation(domain.DateFormat, opts.date, time.Local)
	if err != nil {
		return fmt.Errorf("--date %q: expected YYYY-MM-DD", opts.date)
	}

	client := reservationapi.NewClient(cfg.Client.BaseURL, time.Duration(cfg.Client.Timeout)*time.Second, log)

	hours, err := client.GetOperatingHours(ctx, opts.restaurantID)
	if err != nil {
		return err
	}
	tables, err := client.ListActiveTables(ctx, opts.restaurantID)
	if err != nil {
		return err
	}
	table, err := pickTable(tables, opts.table, opts.partySize)
	if err != nil {
		return err
	}

	coordinator := draft.NewCoordinator(client, opts.restaurantID, hours, cfg.Scheduling.CallTimeoutDuration(), log)
	unsubscribe := coordinator.Subscribe(func(ev draft.Event) {
		if ev.Err != nil {
			log.Warn("Draft %s: %s (%s): %v", coordinator.ID(), ev.Kind, ev.State, ev.Err)
			return
		}
		log.Info("Draft %s: %s (%s)", coordinator.ID(), ev.Kind, ev.State)
	})
	defer unsubscribe()

	if err := fillDraft(coordinator, opts, table, date); err != nil {
		return abortSession(coordinator, log, err)
	}
	if err := coordinator.RefreshAvailability(ctx); err != nil {
		return abortSession(coordinator, log, err)
	}

	if opts.at == "" {
		if opts.serverSide {
			return printServerSlots(ctx, cmd, client, opts.restaurantID, table, date)
		}
		free := coordinator.AvailableTimes()
		fmt.Fprintf(out, "table %s on %s: %d free slots\n", table.Label, date.Format(domain.DateFormat), len(free))
		for _, slot := range free {
			fmt.Fprintf(out, "%8s\n", slot)
		}
		return coordinator.Cancel()
	}

	at, err := types.ParseDisplayTime(opts.at)
	if err != nil {
		return abortSession(coordinator, log, fmt.Errorf("--time %q: %w", opts.at, err))
	}
	if err := coordinator.SelectTime(at); err != nil {
		return abortSession(coordinator, log, err)
	}

	res, err := coordinator.Submit(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "reservation %d: %s, table %s, %s at %s, party of %d (%s)\n",
		res.ID, res.GuestName, res.TableLabel, res.Date.Format(domain.DateFormat), res.StartMinute, res.PartySize, res.Status)
	return nil
}

// abortSession отменяет сессию после ошибки и возвращает исходную ошибку
func abortSession(c *draft.Coordinator, log warnLogger, cause error) error {
	if err := c.Cancel(); err != nil {
		log.Warn("Draft %s: cancel after %v: %v", c.ID(), cause, err)
	}
	return cause
}

func fillDraft(c *draft.Coordinator, opts bookOptions, table *domain.Table, date time.Time) error {
	if err := c.SetGuest(opts.guest, opts.phone, opts.email); err != nil {
		return err
	}
	if opts.partySize > 0 {
		if err := c.SetPartySize(opts.partySize); err != nil {
			return err
		}
	}
	if err := c.SetStatus(domain.ReservationStatus(opts.status)); err != nil {
		return err
	}
	if err := c.SetNotes(opts.notes); err != nil {
		return err
	}
	if err := c.SelectTable(table); err != nil {
		return err
	}
	return c.SetDate(date)
}

// pickTable выбирает стол по метке или первый подходящий по вместимости
func pickTable(tables []*domain.Table, label string, partySize int) (*domain.Table, error) {
	for _, t := range tables {
		if label != "" {
			if strings.EqualFold(t.Label, label) {
				return t, nil
			}
			continue
		}
		if t.Fits(partySize) {
			return t, nil
		}
	}

	if label != "" {
		return nil, fmt.Errorf("active table %q not found", label)
	}
	return nil, fmt.Errorf("no active table seats %d guests", partySize)
}

func printServerSlots(
	ctx context.Context,
	cmd *cobra.Command,
	client *reservationapi.Client,
	restaurantID int64,
	table *domain.Table,
	date time.Time,
) error {
	slots, err := client.GetAvailableSlots(ctx, restaurantID, table.ID, date)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "table %s on %s: %d of %d slots free (service)\n",
		slots.TableLabel, slots.Date, slots.AvailableCount, len(slots.Slots))
	for _, slot := range slots.Free() {
		fmt.Fprintf(out, "%8s\n", slot)
	}
	return nil
}
