package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jeffoo713/lightBnB/internal/user"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Look up or add users",
	}
	cmd.AddCommand(newUserGetCmd(), newUserAddCmd())
	return cmd
}

func newUserGetCmd() *cobra.Command {
	var (
		email string
		id    int64
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show a user by email or ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (email == "") == (id == 0) {
				return errors.New("exactly one of --email or --id is required")
			}

			database, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB(database)

			repo := user.NewRepository(database)
			var u *user.User
			if email != "" {
				u, err = repo.GetByEmail(cmd.Context(), email)
			} else {
				u, err = repo.GetByID(cmd.Context(), id)
			}
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), u)
			}
			return printUser(cmd.OutOrStdout(), u)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address (exact match)")
	cmd.Flags().Int64Var(&id, "id", 0, "user ID")

	return cmd
}

func newUserAddCmd() *cobra.Command {
	var nu user.NewUser

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB(database)

			u, err := user.NewService(user.NewRepository(database)).Register(cmd.Context(), nu)
			if err != nil {
				return err
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), u)
			}
			return printUser(cmd.OutOrStdout(), u)
		},
	}

	cmd.Flags().StringVar(&nu.Name, "name", "", "full name")
	cmd.Flags().StringVar(&nu.Email, "email", "", "email address")
	cmd.Flags().StringVar(&nu.Password, "password", "", "password (at least 8 characters)")

	return cmd
}
