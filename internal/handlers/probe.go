package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"launchdash/internal/dataset"
)

// Pinger is implemented by backing stores the readiness probe checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	holder *dataset.Holder
	store  Pinger
}

// NewProbeHandler creates a new probe handler. store may be nil when the
// dataset is read from a file.
func NewProbeHandler(holder *dataset.Holder, store Pinger) *ProbeHandler {
	return &ProbeHandler{holder: holder, store: store}
}

// Liveness handles the /livez endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK once a dataset is loaded and the database, if any, answers.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.holder.Current() == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "dataset not loaded",
		})
	}

	if h.store != nil {
		if err := h.store.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "error",
				"error":  "database unavailable",
			})
		}
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
