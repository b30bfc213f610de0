package main

import (
	"github.com/spf13/cobra"

	"launchdash/internal/config"
	"launchdash/internal/models"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print dataset bounds, sites and payload statistics as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable(cmd.Context())
		if err != nil {
			return err
		}
		summary, err := table.Summary()
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), models.DatasetResponse{
			ID:         table.ID(),
			Source:     table.Source(),
			LoadedAt:   table.LoadedAt(),
			Records:    table.Len(),
			MinPayload: table.MinPayload(),
			MaxPayload: table.MaxPayload(),
			Sites:      table.SiteOptions(config.DefaultYAMLConfig().AllSitesLabel, nil),
			Summary:    summary,
		})
	},
}
