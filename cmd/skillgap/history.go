package main

import (
	"skill-gap/internal/config"
	"skill-gap/internal/repository"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved analyses, newest first",
	RunE:  runHistory,
}

var (
	historyDBPath string
	historyLimit  int
)

func init() {
	historyCmd.Flags().StringVar(&historyDBPath, "db", "", "SQLite history file (default SQLITE_PATH)")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum number of analyses")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadCLI()
	if err != nil {
		return err
	}

	store, err := repository.OpenSQLiteAnalysisRepository(cmd.Context(), dbPath(cfg, historyDBPath))
	if err != nil {
		return err
	}
	defer store.Close()

	items, err := store.ListAnalyses(cmd.Context(), uuid.Nil, historyLimit)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), items)
}
