package charts

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"launchdash/internal/dataset"
	"launchdash/internal/models"
)

// Scatter chart titles.
const (
	ScatterTitleAllSites = "Success launches to payload mass"
	scatterTitleSiteFmt  = "Success launches to payload mass for %s"
)

// FilterForScatter returns the launches with payload in the closed range
// [r.Low, r.High], restricted to site unless site is models.AllSites.
// Source order is kept. An inverted range matches nothing.
func FilterForScatter(t *dataset.Table, site string, r models.PayloadRange) []models.ScatterPoint {
	points := []models.ScatterPoint{}
	t.Each(func(rec models.LaunchRecord) {
		if !r.Contains(rec.PayloadMassKg) {
			return
		}
		if site != models.AllSites && rec.LaunchSite != site {
			return
		}
		points = append(points, models.ScatterPoint{
			LaunchSite:    rec.LaunchSite,
			PayloadMassKg: rec.PayloadMassKg,
			OutcomeClass:  rec.OutcomeClass,
		})
	})
	return points
}

// Scatter builds the payload vs. outcome chart for site and r.
func Scatter(t *dataset.Table, site string, r models.PayloadRange) models.ScatterChart {
	points := FilterForScatter(t, site, r)

	title := ScatterTitleAllSites
	if site != models.AllSites {
		title = fmt.Sprintf(scatterTitleSiteFmt, site)
	}

	return models.ScatterChart{
		Title:       title,
		Site:        site,
		Range:       r,
		Points:      points,
		Correlation: Correlation(points),
	}
}

// Correlation returns the Pearson coefficient between payload mass and
// outcome class, or nil when it is undefined (fewer than two points or
// either variable constant).
func Correlation(points []models.ScatterPoint) *float64 {
	if len(points) < 2 {
		return nil
	}
	x := make([]float64, len(points))
	y := make([]float64, len(points))
	for i, p := range points {
		x[i] = p.PayloadMassKg
		y[i] = float64(p.OutcomeClass)
	}
	c := stat.Correlation(x, y, nil)
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return nil
	}
	return &c
}
