package cmd

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlevine/mathdash/internal/config"
	"github.com/mlevine/mathdash/internal/provision"
	"github.com/mlevine/mathdash/internal/roster"
	"github.com/mlevine/mathdash/internal/store"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage student accounts",
}

var adminCreateUserCmd = &cobra.Command{
	Use:   "create-user <username> <student name>",
	Short: "Create a student account with a generated password",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			password = provision.GeneratePassword()
		}

		ok, message := st.CreateUser(cmd.Context(), args[0], password, args[1])
		if !ok {
			return fmt.Errorf("%s", message)
		}
		fmt.Printf("Username: %s | Password: %s\n", args[0], password)
		return nil
	},
}

var adminResetPasswordCmd = &cobra.Command{
	Use:   "reset-password <username>",
	Short: "Reset a student's password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			password = provision.GeneratePassword()
		}

		ok, message := st.ResetPassword(cmd.Context(), args[0], password)
		if !ok {
			return fmt.Errorf("%s", message)
		}
		fmt.Printf("New password for %s: %s\n", args[0], password)
		return nil
	},
}

var adminListCmd = &cobra.Command{
	Use:   "list",
	Short: "List student accounts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		users, err := st.ListUsers(cmd.Context())
		if err != nil {
			return err
		}
		for _, u := range users {
			fmt.Printf("%s\t%s\t%s\n", u.Username, u.StudentName, u.CreatedAt.Format("2006-01-02"))
		}
		return nil
	},
}

var adminProvisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Create accounts for all roster students without one",
	Long: "Creates an account for every student on the roster who does not have " +
		"one yet, with generated passwords, and prints a CSV summary to stdout.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		ro, err := roster.Load(resolveRosterPath(cmd, cfg.RosterPath))
		if err != nil {
			return fmt.Errorf("load roster: %w", err)
		}
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		results, err := provision.All(cmd.Context(), st, ro)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Fprintln(os.Stderr, "All students already have accounts.")
			return nil
		}

		w := csv.NewWriter(os.Stdout)
		_ = w.Write([]string{"Student", "Username", "Password", "Status", "Message"})
		for _, r := range results {
			status := "Created"
			if !r.Created {
				status = "Failed"
			}
			_ = w.Write([]string{r.Student, r.Username, r.Password, status, r.Message})
		}
		w.Flush()
		return w.Error()
	},
}

// openStore opens the database for an admin subcommand.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func init() {
	adminCreateUserCmd.Flags().String("password", "", "Initial password (default: generated)")
	adminResetPasswordCmd.Flags().String("password", "", "New password (default: generated)")

	adminCmd.AddCommand(adminCreateUserCmd)
	adminCmd.AddCommand(adminResetPasswordCmd)
	adminCmd.AddCommand(adminListCmd)
	adminCmd.AddCommand(adminProvisionCmd)
}
