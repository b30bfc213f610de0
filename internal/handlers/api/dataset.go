package api

import (
	"github.com/gofiber/fiber/v3"

	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/models"
)

// DatasetHandler describes the loaded dataset via JSON API.
type DatasetHandler struct {
	holder *dataset.Holder
	ui     *config.YAMLConfig
}

// NewDatasetHandler creates a new API dataset handler.
func NewDatasetHandler(holder *dataset.Holder, ui *config.YAMLConfig) *DatasetHandler {
	if ui == nil {
		ui = config.DefaultYAMLConfig()
	}
	return &DatasetHandler{holder: holder, ui: ui}
}

// Show returns dataset metadata, control bounds and summary statistics.
func (h *DatasetHandler) Show(c fiber.Ctx) error {
	t := h.holder.Current()

	summary, err := t.Summary()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to summarize dataset")
	}

	return jsonSuccess(c, models.DatasetResponse{
		ID:         t.ID(),
		Source:     t.Source(),
		LoadedAt:   t.LoadedAt(),
		Records:    t.Len(),
		MinPayload: t.MinPayload(),
		MaxPayload: t.MaxPayload(),
		Sites:      t.SiteOptions(h.ui.AllSitesLabel, h.ui.SiteLabels),
		Summary:    summary,
	})
}

// Sites returns the launch site dropdown options, ALL first.
func (h *DatasetHandler) Sites(c fiber.Ctx) error {
	return jsonSuccess(c, h.holder.Current().SiteOptions(h.ui.AllSitesLabel, h.ui.SiteLabels))
}
