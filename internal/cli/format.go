package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jeffoo713/lightBnB/internal/property"
	"github.com/jeffoo713/lightBnB/internal/reservation"
	"github.com/jeffoo713/lightBnB/internal/review"
	"github.com/jeffoo713/lightBnB/internal/user"
)

// printJSON writes v to w as indented JSON.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printUser(w io.Writer, u *user.User) error {
	_, err := fmt.Fprintf(w, "User #%d\n  Name:   %s\n  Email:  %s\n", u.ID, u.Name, u.Email)
	return err
}

// printPropertySummary prints a single property in text format.
func printPropertySummary(w io.Writer, p *property.Property) error {
	lines := []string{
		fmt.Sprintf("Property #%d", p.ID),
		fmt.Sprintf("  Title:    %s", p.Title),
		fmt.Sprintf("  Address:  %s", formatAddress(p)),
		fmt.Sprintf("  Price:    %s/night", formatCents(p.CostPerNight)),
		fmt.Sprintf("  Rooms:    %d bed, %d bath, %d parking", p.NumberOfBedrooms, p.NumberOfBathrooms, p.ParkingSpaces),
		fmt.Sprintf("  Owner:    #%d", p.OwnerID),
	}
	if p.AverageRating != nil {
		lines = append(lines, fmt.Sprintf("  Rating:   %s", formatRating(p.AverageRating)))
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// printPropertyTable prints a list of properties as a formatted table.
func printPropertyTable(out io.Writer, props []*property.Property) error {
	if len(props) == 0 {
		_, err := fmt.Fprintln(out, "No properties found.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tTITLE\tCITY\tPRICE\tBED\tBATH\tRATING"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t-----\t----\t-----\t---\t----\t------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, p := range props {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%s\n",
			p.ID, truncate(p.Title, 40), p.City, formatCents(p.CostPerNight),
			p.NumberOfBedrooms, p.NumberOfBathrooms, formatRating(p.AverageRating)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	_, err := fmt.Fprintf(out, "\nTotal: %d properties\n", len(props))
	return err
}

func printReservations(w io.Writer, list []*reservation.Reservation) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No reservations.")
		return err
	}

	for _, r := range list {
		if _, err := fmt.Fprintf(w, "#%d  property #%d  %s to %s\n", r.ID, r.PropertyID,
			r.StartDate.Format(reservation.DateLayout), r.EndDate.Format(reservation.DateLayout)); err != nil {
			return err
		}
	}
	return nil
}

func printReviews(w io.Writer, reviews []*review.Review) error {
	if len(reviews) == 0 {
		_, err := fmt.Fprintln(w, "No reviews.")
		return err
	}

	for _, r := range reviews {
		if _, err := fmt.Fprintf(w, "#%d  %s  guest #%d\n", r.ID, stars(r.Rating), r.GuestID); err != nil {
			return err
		}
		if r.Message != "" {
			if _, err := fmt.Fprintf(w, "  %s\n", r.Message); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatAddress(p *property.Property) string {
	parts := []string{p.Street, p.City}
	for _, s := range []string{p.Province, p.PostCode, p.Country} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// formatCents formats an amount in cents as dollars with thousands separators.
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%s.%02d", sign, formatWithCommas(cents/100), cents%100)
}

func formatWithCommas(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	return strings.Join(parts, ",")
}

// formatRating renders an average rating to one decimal, or "-" when unrated.
func formatRating(avg *float64) string {
	if avg == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *avg)
}

// stars returns a 1-5 star representation of a rating, clamped to range.
func stars(rating int) string {
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
