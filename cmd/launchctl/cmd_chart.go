package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"launchdash/internal/charts"
	"launchdash/internal/models"
	"launchdash/internal/validation"
)

var (
	chartSite string
	chartMin  string
	chartMax  string
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Print chart data as JSON",
}

var chartPieCmd = &cobra.Command{
	Use:   "pie",
	Short: "Print the launch outcome pie for a site",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable(cmd.Context())
		if err != nil {
			return err
		}
		site := validation.NormalizeSite(chartSite)
		if ok, msg := validation.ValidateSite(site, table); !ok {
			return fmt.Errorf("%s", msg)
		}
		return writeJSON(cmd.OutOrStdout(), charts.Aggregate(table, site))
	},
}

var chartScatterCmd = &cobra.Command{
	Use:   "scatter",
	Short: "Print payload vs. outcome points for a site and payload range",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable(cmd.Context())
		if err != nil {
			return err
		}
		site := validation.NormalizeSite(chartSite)
		if ok, msg := validation.ValidateSite(site, table); !ok {
			return fmt.Errorf("%s", msg)
		}
		rng, ok, msg := validation.ParsePayloadRange(chartMin, chartMax, table.PayloadBounds())
		if !ok {
			return fmt.Errorf("%s", msg)
		}
		return writeJSON(cmd.OutOrStdout(), charts.Scatter(table, site, rng))
	},
}

func init() {
	chartCmd.PersistentFlags().StringVar(&chartSite, "site", models.AllSites, "launch site, or ALL")
	chartScatterCmd.Flags().StringVar(&chartMin, "min", "", "lowest payload mass in kg (default: dataset minimum)")
	chartScatterCmd.Flags().StringVar(&chartMax, "max", "", "highest payload mass in kg (default: dataset maximum)")

	chartCmd.AddCommand(chartPieCmd, chartScatterCmd)
}
