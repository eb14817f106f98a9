package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var migrateDatabaseURL string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long:  "Creates or upgrades the generated_documents table using the migrations embedded in the binary.",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&migrateDatabaseURL, "db-url", "", "Database URL (defaults to DATABASE_URL)")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	databaseURL := migrateDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL not set and --db-url not provided")
	}

	database, err := connectAndMigrate(cmd.Context(), databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
	return nil
}
