package api

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"launchdash/internal/dataset"
)

// HealthHandler reports whether a dataset is being served.
type HealthHandler struct {
	holder *dataset.Holder
}

// NewHealthHandler creates a new API health handler.
func NewHealthHandler(holder *dataset.Holder) *HealthHandler {
	return &HealthHandler{holder: holder}
}

// Check returns the id and age of the dataset in service.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	t := h.holder.Current()
	if t == nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "no dataset loaded")
	}

	return jsonSuccess(c, fiber.Map{
		"dataset_id": t.ID(),
		"records":    t.Len(),
		"loaded_at":  t.LoadedAt().Format(time.RFC3339),
	})
}
