// Package charts turns the launch table into the series the dashboard plots.
// Every function here is a pure transform of its inputs.
package charts

import (
	"fmt"
	"sort"

	"launchdash/internal/dataset"
	"launchdash/internal/models"
)

// Pie chart titles.
const (
	PieTitleAllSites = "Total launches"
	pieTitleSiteFmt  = "Successful launches rate for %s"
)

// Aggregate builds the launch outcome pie for site.
//
// For models.AllSites it emits one slice per site in first-seen order whose
// value is the number of successful launches at that site. Note that this is
// a success count, not a launch count, even though the title says otherwise.
//
// For a specific site it emits one slice per outcome class present at that
// site ("0" then "1") whose value is the number of launches with that class.
// A site absent from the table yields no slices.
func Aggregate(t *dataset.Table, site string) models.PieChart {
	if site == models.AllSites {
		return successesBySite(t)
	}
	return outcomesForSite(t, site)
}

func successesBySite(t *dataset.Table) models.PieChart {
	sites := t.Sites()
	sums := make(map[string]int, len(sites))
	t.Each(func(r models.LaunchRecord) {
		sums[r.LaunchSite] += r.OutcomeClass
	})

	slices := make([]models.Slice, 0, len(sites))
	for _, s := range sites {
		slices = append(slices, models.Slice{Label: s, Value: float64(sums[s])})
	}

	return models.PieChart{
		Title:  PieTitleAllSites,
		Site:   models.AllSites,
		Slices: slices,
	}
}

func outcomesForSite(t *dataset.Table, site string) models.PieChart {
	counts := map[int]int{}
	t.Each(func(r models.LaunchRecord) {
		if r.LaunchSite == site {
			counts[r.OutcomeClass]++
		}
	})

	classes := make([]int, 0, len(counts))
	for class := range counts {
		classes = append(classes, class)
	}
	sort.Ints(classes)

	slices := make([]models.Slice, 0, len(classes))
	for _, class := range classes {
		slices = append(slices, models.Slice{
			Label: models.OutcomeLabel(class),
			Value: float64(counts[class]),
		})
	}

	return models.PieChart{
		Title:  fmt.Sprintf(pieTitleSiteFmt, site),
		Site:   site,
		Slices: slices,
	}
}
