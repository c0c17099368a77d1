package cli

import (
	"github.com/spf13/cobra"

	"github.com/jeffoo713/lightBnB/internal/property"
)

func newPropertiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "properties",
		Short: "Search or add property listings",
	}
	cmd.AddCommand(newPropertiesSearchCmd(), newPropertiesAddCmd())
	return cmd
}

func newPropertiesSearchCmd() *cobra.Command {
	var (
		opts      property.SearchOptions
		minPrice  int64
		maxPrice  int64
		minRating float64
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search properties",
		Long: "Search properties by city, owner, nightly price range and minimum average rating. " +
			"Prices are whole currency units and the range applies only when both bounds are given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("min-price") {
				opts.MinimumPricePerNight = &minPrice
			}
			if flags.Changed("max-price") {
				opts.MaximumPricePerNight = &maxPrice
			}
			if flags.Changed("min-rating") {
				opts.MinimumRating = &minRating
			}

			database, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB(database)

			props, err := property.NewRepository(database).Search(cmd.Context(), opts, limit)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), props)
			}
			return printPropertyTable(cmd.OutOrStdout(), props)
		},
	}

	cmd.Flags().StringVar(&opts.City, "city", "", "city name, matched case-insensitively")
	cmd.Flags().Int64Var(&opts.OwnerID, "owner", 0, "owner user ID")
	cmd.Flags().Int64Var(&minPrice, "min-price", 0, "minimum price per night")
	cmd.Flags().Int64Var(&maxPrice, "max-price", 0, "maximum price per night")
	cmd.Flags().Float64Var(&minRating, "min-rating", 0, "minimum average rating")
	cmd.Flags().IntVar(&limit, "limit", property.DefaultLimit, "maximum number of results")

	return cmd
}

func newPropertiesAddCmd() *cobra.Command {
	var np property.NewProperty

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a property listing",
		Long:  "Add a property listing. --cost is the nightly price in cents.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB(database)

			p, err := property.NewRepository(database).Add(cmd.Context(), np)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), p)
			}
			return printPropertySummary(cmd.OutOrStdout(), p)
		},
	}

	f := cmd.Flags()
	f.Int64Var(&np.OwnerID, "owner", 0, "owner user ID")
	f.StringVar(&np.Title, "title", "", "listing title")
	f.StringVar(&np.Description, "description", "", "listing description")
	f.StringVar(&np.ThumbnailPhotoURL, "thumbnail", "", "thumbnail photo URL")
	f.StringVar(&np.CoverPhotoURL, "cover", "", "cover photo URL")
	f.Int64Var(&np.CostPerNight, "cost", 0, "price per night in cents")
	f.StringVar(&np.Street, "street", "", "street address")
	f.StringVar(&np.City, "city", "", "city")
	f.StringVar(&np.Province, "province", "", "province or state")
	f.StringVar(&np.PostCode, "post-code", "", "postal code")
	f.StringVar(&np.Country, "country", "", "country")
	f.IntVar(&np.ParkingSpaces, "parking", 0, "number of parking spaces")
	f.IntVar(&np.NumberOfBathrooms, "bathrooms", 0, "number of bathrooms")
	f.IntVar(&np.NumberOfBedrooms, "bedrooms", 0, "number of bedrooms")

	return cmd
}
