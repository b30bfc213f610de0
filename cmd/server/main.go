package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/handlers"
	"launchdash/internal/jobs"
	"launchdash/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	ui, err := config.LoadYAMLConfig(cfg.ConfigFile)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", cfg.ConfigFile, err)
	}

	// Load the dataset once; the process does not start without it.
	table, load, database, err := openDataset(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	var store handlers.Pinger
	if database != nil {
		store = database
	}
	log.Printf("Loaded %d launch records from %s (%d sites, payload %.0f-%.0f kg)",
		table.Len(), table.Source(), len(table.Sites()), table.MinPayload(), table.MaxPayload())

	holder := dataset.NewHolder(table)

	srv := server.New(cfg)
	srv.RegisterRoutes(holder, ui, store)

	g, gctx := errgroup.WithContext(ctx)

	switch {
	case cfg.UsesPostgres() && cfg.DatasetReloadInterval > 0:
		reloader := jobs.NewReloader(holder, load, cfg.DatasetReloadInterval)
		g.Go(func() error {
			reloader.Start(gctx)
			return nil
		})
	case !cfg.UsesPostgres() && cfg.DatasetWatch:
		watcher := jobs.NewFileWatcher(holder, cfg.DatasetFile, load)
		g.Go(func() error {
			return watcher.Start(gctx)
		})
	}

	g.Go(func() error {
		return srv.Start()
	})
	log.Printf("Server started on %s", cfg.ServerAddr)

	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")
		return srv.Shutdown()
	})

	err = g.Wait()
	if database != nil {
		database.Close()
	}
	if err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server exited")
}
