package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/personakit/personafind/internal/config"
	"github.com/personakit/personafind/internal/db"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect saved search sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent search sessions",
	RunE:  runSessionsList,
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show one search session as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsShow,
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete one search session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsDelete,
}

var (
	sessionsDatabaseURL string
	sessionsLimit       int
)

func init() {
	sessionsCmd.PersistentFlags().StringVar(&sessionsDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	sessionsListCmd.Flags().IntVar(&sessionsLimit, "limit", 20, "Maximum sessions to list")

	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsShowCmd)
	sessionsCmd.AddCommand(sessionsDeleteCmd)
	rootCmd.AddCommand(sessionsCmd)
}

func sessionsConnect(ctx context.Context) (*db.DB, error) {
	cfg := config.Config{DatabaseURL: sessionsDatabaseURL}
	cfg.MergeWithEnv()
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL is required (set DATABASE_URL environment variable or use --db-url flag)")
	}
	return db.Connect(ctx, cfg.DatabaseURL)
}

func runSessionsList(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	database, err := sessionsConnect(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	sessions, err := database.ListSessions(ctx, sessionsLimit)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	if len(sessions) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No sessions found.")
		return nil
	}

	for _, s := range sessions {
		_, _ = fmt.Fprintf(os.Stdout, "%s  %s  %s  (%d results)\n",
			s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.Persona.Name, len(s.Results))
	}
	return nil
}

func runSessionsShow(_ *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid session id: %w", err)
	}

	ctx := context.Background()
	database, err := sessionsConnect(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	session, err := database.GetSession(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return fmt.Errorf("session not found: %s", id)
	}

	return writeJSON("", session)
}

func runSessionsDelete(_ *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid session id: %w", err)
	}

	ctx := context.Background()
	database, err := sessionsConnect(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Deleted session %s\n", id)
	return nil
}
