package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/db"
)

var (
	sourceFlag string
	fileFlag   string
	sheetFlag  string
)

var rootCmd = &cobra.Command{
	Use:           "launchctl",
	Short:         "Launch dashboard operator commands",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	cfg := config.Load()
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", cfg.DatasetSource, "dataset source: file or postgres")
	rootCmd.PersistentFlags().StringVar(&fileFlag, "file", cfg.DatasetFile, "dataset file (.csv or .xlsx)")
	rootCmd.PersistentFlags().StringVar(&sheetFlag, "sheet", cfg.DatasetSheet, "worksheet name for .xlsx files")

	rootCmd.AddCommand(importCmd, chartCmd, summaryCmd)
}

// loadTable reads the dataset from the source selected by flags.
func loadTable(ctx context.Context) (*dataset.Table, error) {
	switch sourceFlag {
	case config.SourceFile:
		return dataset.LoadFile(fileFlag, dataset.Options{Sheet: sheetFlag})
	case config.SourcePostgres:
		database, err := db.Open(ctx, config.Load().DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		defer database.Close()
		return database.LoadTable(ctx)
	default:
		return nil, fmt.Errorf("unknown source %q (want %s or %s)", sourceFlag, config.SourceFile, config.SourcePostgres)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
