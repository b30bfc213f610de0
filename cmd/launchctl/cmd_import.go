package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/db"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a dataset file into Postgres",
	Long:  "Validate a .csv or .xlsx dataset and replace the launch_records table with its rows.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		table, err := dataset.LoadFile(fileFlag, dataset.Options{Sheet: sheetFlag})
		if err != nil {
			return fmt.Errorf("load %s: %w", fileFlag, err)
		}

		database, err := db.Open(ctx, config.Load().DatabaseURL)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer database.Close()

		n, err := database.ImportLaunchRecords(ctx, table.Records())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d launch records from %s (%d sites)\n", n, fileFlag, len(table.Sites()))
		return nil
	},
}
