package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mlevine/mathdash/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathdash",
	Short: "Math practice dashboard for 8th-grade standards",
	Long: "Mathdash — terminal dashboard that shows each student's standards " +
		"performance and generates targeted practice questions for their weak areas.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// A missing .env is fine; keys can come from the environment.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHDASH_DB env var)")
	rootCmd.PersistentFlags().String("roster", "", "Path to the gradebook CSV export (overrides config)")
	rootCmd.Flags().String("student", "", "Skip login and start a session for this student (local development)")

	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then config / MATHDASH_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}

func resolveRosterPath(cmd *cobra.Command, configured string) string {
	if p, _ := cmd.Flags().GetString("roster"); p != "" {
		return p
	}
	return configured
}
