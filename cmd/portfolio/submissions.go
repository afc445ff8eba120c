package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var submissionsCmd = &cobra.Command{
	Use:   "submissions",
	Short: "List stored contact submissions",
	Long:  "Prints the most recent contact submissions, newest first, as JSON. Requires DATABASE_URL or SQLITE_PATH.",
	RunE:  runSubmissions,
}

var (
	submissionsLimit      int
	submissionsConfigPath string
)

func init() {
	submissionsCmd.Flags().IntVarP(&submissionsLimit, "limit", "n", 20, "Maximum number of submissions to list")
	submissionsCmd.Flags().StringVarP(&submissionsConfigPath, "config", "c", "", "Path to JSON config file")
	rootCmd.AddCommand(submissionsCmd)
}

func runSubmissions(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(submissionsConfigPath)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	if store == nil {
		return errors.New("no submission store configured: set DATABASE_URL or SQLITE_PATH")
	}

	subs, err := store.ListSubmissions(cmd.Context(), submissionsLimit)
	if err != nil {
		return fmt.Errorf("failed to list submissions: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(subs)
}
