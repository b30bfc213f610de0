package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/handlers"
	"launchdash/internal/handlers/api"
	"launchdash/internal/metrics"
)

// RegisterRoutes registers all application routes. store is nil unless the
// dataset is served from Postgres.
func (s *Server) RegisterRoutes(holder *dataset.Holder, ui *config.YAMLConfig, store handlers.Pinger) {
	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(holder, s.Cfg, ui)
	chartHandler := api.NewChartHandler(holder)
	datasetHandler := api.NewDatasetHandler(holder, ui)
	healthHandler := api.NewHealthHandler(holder)
	probeHandler := handlers.NewProbeHandler(holder, store)

	// Frontend
	s.App.Get("/", dashboardHandler.Index)

	// Chart data, requested by the page whenever a control changes
	s.App.Get("/api/dataset", datasetHandler.Show)
	s.App.Get("/api/sites", datasetHandler.Sites)
	s.App.Get("/api/charts/pie", chartHandler.Pie)
	s.App.Get("/api/charts/scatter", chartHandler.Scatter)

	// Health and Kubernetes probes
	s.App.Get("/healthz", healthHandler.Check)
	s.App.Get("/livez", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)

	if s.Cfg.MetricsEnabled {
		metrics.Init(holder)
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}
}
