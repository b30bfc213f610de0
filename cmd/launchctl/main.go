// launchctl is the operator CLI for the launch dashboard: import the dataset
// into Postgres and print chart data without starting the server.
//
// Usage:
//
//	launchctl import --file spacex_launch_dash.csv
//	launchctl chart pie --site ALL
//	launchctl chart scatter --site "KSC LC-39A" --min 2000 --max 8000
//	launchctl summary [--source postgres]
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
