package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/reservationapi"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

func newCancelCmd(configPath *string) *cobra.Command {
	var (
		restaurantID int64
		status       string
	)

	cmd := &cobra.Command{
		Use:   "cancel <reservation-id>",
		Short: "Release a reservation through the reservation API",
		Long:  "Sets the reservation status to Cancelled (or to --status, e.g. NoShow), which frees its table slot.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid reservation id %q", args[0])
			}

			newStatus := domain.ReservationStatus(status)
			if !newStatus.IsValid() || newStatus.BlocksTable() {
				return fmt.Errorf("--status must be one of %v", domain.InactiveStatuses)
			}

			cfg, log, err := loadRuntime(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			if !cmd.Flags().Changed("restaurant") {
				restaurantID = cfg.Client.RestaurantID
			}

			client := reservationapi.NewClient(cfg.Client.BaseURL, time.Duration(cfg.Client.Timeout)*time.Second, log)
			res, err := client.UpdateReservation(cmd.Context(), restaurantID, id, &domain.ReservationUpdate{Status: ptr.Ptr(newStatus)})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "reservation %d is %s\n", res.ID, res.Status)
			return nil
		},
	}

	cmd.Flags().Int64Var(&restaurantID, "restaurant", 0, "restaurant id (default from config)")
	cmd.Flags().StringVar(&status, "status", string(domain.StatusCancelled), "final status: Completed, Cancelled or NoShow")

	return cmd
}
