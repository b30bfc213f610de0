package api

import (
	"github.com/gofiber/fiber/v3"

	"launchdash/internal/charts"
	"launchdash/internal/dataset"
	"launchdash/internal/metrics"
	"launchdash/internal/validation"
)

// ChartHandler serves chart data for the dashboard controls.
type ChartHandler struct {
	holder *dataset.Holder
}

// NewChartHandler creates a new API chart handler.
func NewChartHandler(holder *dataset.Holder) *ChartHandler {
	return &ChartHandler{holder: holder}
}

// Pie returns the launch outcome pie for the site query parameter.
func (h *ChartHandler) Pie(c fiber.Ctx) error {
	t := h.holder.Current()

	site := validation.NormalizeSite(c.Query("site"))
	if ok, msg := validation.ValidateSite(site, t); !ok {
		return jsonBadRequest(c, msg)
	}

	metrics.RecordChartRequest(metrics.ChartPie, site)
	return jsonSuccess(c, charts.Aggregate(t, site))
}

// Scatter returns payload vs. outcome points for the site, min and max
// query parameters. Missing bounds default to the dataset bounds.
func (h *ChartHandler) Scatter(c fiber.Ctx) error {
	t := h.holder.Current()

	site := validation.NormalizeSite(c.Query("site"))
	if ok, msg := validation.ValidateSite(site, t); !ok {
		return jsonBadRequest(c, msg)
	}

	rng, ok, msg := validation.ParsePayloadRange(c.Query("min"), c.Query("max"), t.PayloadBounds())
	if !ok {
		return jsonBadRequest(c, msg)
	}

	metrics.RecordChartRequest(metrics.ChartScatter, site)
	return jsonSuccess(c, charts.Scatter(t, site, rng))
}
