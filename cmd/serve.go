package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathtutor/internal/llm"
	"github.com/abhisek/mathtutor/internal/server"
	"github.com/abhisek/mathtutor/internal/store"
	"github.com/abhisek/mathtutor/internal/tutor"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tutoring HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	ctx := cmd.Context()
	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = ":8080"
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}

	svc := tutor.NewService(st.SessionRepo(), st.SubmissionRepo(), provider)
	fmt.Printf("mathtutor listening on %s (db: %s)\n", addr, dbPath)
	return server.New(svc).Run(addr)
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	rootCmd.Flags().String("addr", ":8080", "Listen address")
}
