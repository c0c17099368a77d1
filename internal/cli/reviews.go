package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jeffoo713/lightBnB/internal/review"
)

func newReviewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reviews <property-id>",
		Short: "List reviews for a property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid property ID %q: %w", args[0], err)
			}

			database, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB(database)

			reviews, err := review.NewRepository(database).ListByProperty(cmd.Context(), id)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), reviews)
			}
			return printReviews(cmd.OutOrStdout(), reviews)
		},
	}
}
