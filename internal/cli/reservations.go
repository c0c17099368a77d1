package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jeffoo713/lightBnB/internal/reservation"
)

func newReservationsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "reservations <guest-id>",
		Short: "List a guest's reservations",
		Long:  "List a guest's reservations, earliest start date first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			guestID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid guest ID %q: %w", args[0], err)
			}

			database, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB(database)

			list, err := reservation.NewRepository(database).ListByGuest(cmd.Context(), guestID, limit)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), list)
			}
			return printReservations(cmd.OutOrStdout(), list)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", reservation.DefaultLimit, "maximum number of reservations")

	return cmd
}
