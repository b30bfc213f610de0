package handlers

import (
	"math"

	"github.com/gofiber/fiber/v3"

	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/models"
	"launchdash/internal/validation"
)

// DashboardHandler renders the dashboard page.
type DashboardHandler struct {
	holder *dataset.Holder
	cfg    *config.Config
	ui     *config.YAMLConfig
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(holder *dataset.Holder, cfg *config.Config, ui *config.YAMLConfig) *DashboardHandler {
	if ui == nil {
		ui = config.DefaultYAMLConfig()
	}
	return &DashboardHandler{holder: holder, cfg: cfg, ui: ui}
}

// Index renders the dashboard with the site dropdown and payload range
// control populated from the current dataset. Charts are fetched by the
// page from the JSON API.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	t := h.holder.Current()

	site := validation.NormalizeSite(c.Query("site", h.ui.DefaultSite))
	if ok, _ := validation.ValidateSite(site, t); !ok {
		site = models.AllSites
	}

	sliderMin, sliderMax := sliderBounds(t.MinPayload(), t.MaxPayload(), h.ui.Slider.Step)

	return c.Render("index", MergeBranding(fiber.Map{
		"Title":       h.cfg.SiteTitle,
		"SiteOptions": t.SiteOptions(h.ui.AllSitesLabel, h.ui.SiteLabels),
		"Site":        site,
		"MinPayload":  t.MinPayload(),
		"MaxPayload":  t.MaxPayload(),
		"SliderMin":   sliderMin,
		"SliderMax":   sliderMax,
		"SliderStep":  h.ui.Slider.Step,
		"SliderMarks": h.ui.Slider.Marks,
		"Records":     t.Len(),
		"DatasetID":   t.ID().String(),
	}, h.cfg))
}

// sliderBounds widens [lo, hi] to whole steps so every stop, including the
// one just below hi, is reachable. The page clamps the outer stops back to
// the dataset bounds.
func sliderBounds(lo, hi, step float64) (float64, float64) {
	if step <= 0 {
		return lo, hi
	}
	return math.Floor(lo/step) * step, math.Ceil(hi/step) * step
}
