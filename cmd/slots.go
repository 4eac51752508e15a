package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ReservationService/internal/config"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/schedule"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func newSlotsCmd(configPath *string) *cobra.Command {
	var (
		start, end string
		interval   int
		turnaround int
		buffer     int
		booked     []string
	)

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Print the slots of one shift without touching the database",
		Example: `  reservation-service slots --start "12:00 PM" --end "11:00 PM" --interval 30
  reservation-service slots --booked "12:30 PM" --booked "7:00 PM"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			sched := cfg.Scheduling
			if cmd.Flags().Changed("start") {
				sched.ShiftStart = start
			}
			if cmd.Flags().Changed("end") {
				sched.ShiftEnd = end
			}
			if cmd.Flags().Changed("interval") {
				sched.IntervalMinutes = interval
			}
			if cmd.Flags().Changed("turnaround") {
				sched.TurnaroundMinutes = turnaround
			}
			if cmd.Flags().Changed("buffer") {
				sched.BufferMinutes = buffer
			}

			hours, err := sched.DefaultHours()
			if err != nil {
				return err
			}
			return printSlots(cmd, hours, booked)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "shift start, e.g. \"12:00 PM\" (default from config)")
	cmd.Flags().StringVar(&end, "end", "", "shift end, e.g. \"11:00 PM\" (default from config)")
	cmd.Flags().IntVar(&interval, "interval", 0, "slot interval in minutes (default from config)")
	cmd.Flags().IntVar(&turnaround, "turnaround", 0, "table turnaround in minutes (default from config)")
	cmd.Flags().IntVar(&buffer, "buffer", 0, "buffer after each reservation in minutes (default from config)")
	cmd.Flags().StringArrayVar(&booked, "booked", nil, "start time of an existing reservation, repeatable")

	return cmd
}

func printSlots(cmd *cobra.Command, hours domain.OperatingHours, booked []string) error {
	candidates, err := schedule.Enumerate(hours)
	if err != nil {
		return err
	}

	date := domain.DateOnly(time.Now())
	reservations := make([]*domain.Reservation, 0, len(booked))
	for _, raw := range booked {
		minute, err := types.ParseDisplayTime(raw)
		if err != nil {
			return fmt.Errorf("--booked %q: %w", raw, err)
		}
		reservations = append(reservations, &domain.Reservation{
			Date:        date,
			StartMinute: minute,
			Status:      domain.StatusConfirmed,
		})
	}

	free := schedule.Resolve(0, date, candidates, reservations, hours)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "shift %s - %s, every %d min, table occupied %d min\n",
		hours.ShiftStart, hours.ShiftEnd, hours.IntervalMinutes, hours.OccupancyMinutes())
	for _, slot := range candidates {
		mark := "free"
		if !free.Contains(slot) {
			mark = "busy"
		}
		fmt.Fprintf(out, "%8s  %s\n", slot, mark)
	}
	fmt.Fprintf(out, "%d of %d slots free\n", len(free), len(candidates))
	return nil
}
