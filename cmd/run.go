package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlevine/mathdash/internal/config"
	"github.com/mlevine/mathdash/internal/llm"
	"github.com/mlevine/mathdash/internal/question"
	"github.com/mlevine/mathdash/internal/roster"
	"github.com/mlevine/mathdash/internal/store"
	"github.com/mlevine/mathdash/internal/tui"
)

// runApp loads config, opens the store, builds the generation pipeline,
// and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ro, err := roster.Load(resolveRosterPath(cmd, cfg.RosterPath))
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Question generation will be unavailable.")
	}

	deps := tui.Deps{
		Roster:        ro,
		Store:         st,
		Generator:     question.NewGenerator(provider, question.DefaultConfig()),
		Distractors:   question.NewDistractors(provider),
		AdminPassword: cfg.AdminPassword,
		WeakThreshold: cfg.WeakThreshold,
	}

	student, _ := cmd.Flags().GetString("student")
	return tui.Run(deps, student)
}
