package charts

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchdash/internal/dataset"
	"launchdash/internal/models"
)

func newTable(t *testing.T, records ...models.LaunchRecord) *dataset.Table {
	t.Helper()
	table, err := dataset.New(records, "test")
	require.NoError(t, err)
	return table
}

func rec(site string, payload float64, class int) models.LaunchRecord {
	return models.LaunchRecord{LaunchSite: site, PayloadMassKg: payload, OutcomeClass: class}
}

func point(site string, payload float64, class int) models.ScatterPoint {
	return models.ScatterPoint{LaunchSite: site, PayloadMassKg: payload, OutcomeClass: class}
}

func smallTable(t *testing.T) *dataset.Table {
	return newTable(t, rec("A", 100, 1), rec("A", 200, 0), rec("B", 150, 1))
}

func launchTable(t *testing.T) *dataset.Table {
	return newTable(t,
		rec("CCAFS LC-40", 0, 0),
		rec("CCAFS LC-40", 525, 0),
		rec("VAFB SLC-4E", 500, 0),
		rec("KSC LC-39A", 2490, 1),
		rec("CCAFS SLC-40", 9600, 1),
		rec("KSC LC-39A", 5300, 1),
		rec("KSC LC-39A", 3600, 0),
		rec("VAFB SLC-4E", 9600, 1),
		rec("CCAFS LC-40", 1000, 1),
	)
}

func TestAggregateAllSites(t *testing.T) {
	got := Aggregate(smallTable(t), models.AllSites)

	want := models.PieChart{
		Title: "Total launches",
		Site:  models.AllSites,
		Slices: []models.Slice{
			{Label: "A", Value: 1},
			{Label: "B", Value: 1},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Aggregate(ALL) mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateSite(t *testing.T) {
	got := Aggregate(smallTable(t), "A")

	want := models.PieChart{
		Title: "Successful launches rate for A",
		Site:  "A",
		Slices: []models.Slice{
			{Label: "0", Value: 1},
			{Label: "1", Value: 1},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Aggregate(A) mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateSiteSingleOutcome(t *testing.T) {
	got := Aggregate(smallTable(t), "B")
	assert.Equal(t, []models.Slice{{Label: "1", Value: 1}}, got.Slices)
}

func TestAggregateUnknownSite(t *testing.T) {
	got := Aggregate(smallTable(t), "Nowhere")
	assert.Empty(t, got.Slices)
	assert.Equal(t, "Successful launches rate for Nowhere", got.Title)
}

func TestAggregateAllSitesProperties(t *testing.T) {
	table := launchTable(t)
	got := Aggregate(table, models.AllSites)

	assert.Equal(t, table.Sites(), got.Labels(), "one slice per site in first-seen order")

	successes := 0
	table.Each(func(r models.LaunchRecord) { successes += r.OutcomeClass })
	assert.Equal(t, float64(successes), got.Total())
}

func TestAggregateSiteProperties(t *testing.T) {
	table := launchTable(t)

	for _, site := range table.Sites() {
		t.Run(site, func(t *testing.T) {
			count := 0
			table.Each(func(r models.LaunchRecord) {
				if r.LaunchSite == site {
					count++
				}
			})
			got := Aggregate(table, site)
			assert.Equal(t, float64(count), got.Total())
			for _, s := range got.Slices {
				assert.Contains(t, []string{"0", "1"}, s.Label)
			}
		})
	}
}

func TestFilterForScatter(t *testing.T) {
	table := smallTable(t)

	tests := []struct {
		name string
		site string
		r    models.PayloadRange
		want []models.ScatterPoint
	}{
		{
			name: "all sites within range",
			site: models.AllSites,
			r:    models.PayloadRange{Low: 120, High: 200},
			want: []models.ScatterPoint{point("A", 200, 0), point("B", 150, 1)},
		},
		{
			name: "single site",
			site: "B",
			r:    models.PayloadRange{Low: 0, High: 300},
			want: []models.ScatterPoint{point("B", 150, 1)},
		},
		{
			name: "closed interval includes both bounds",
			site: models.AllSites,
			r:    models.PayloadRange{Low: 100, High: 150},
			want: []models.ScatterPoint{point("A", 100, 1), point("B", 150, 1)},
		},
		{
			name: "degenerate range",
			site: models.AllSites,
			r:    models.PayloadRange{Low: 200, High: 200},
			want: []models.ScatterPoint{point("A", 200, 0)},
		},
		{
			name: "inverted range",
			site: models.AllSites,
			r:    models.PayloadRange{Low: 300, High: 0},
			want: []models.ScatterPoint{},
		},
		{
			name: "range outside data",
			site: "A",
			r:    models.PayloadRange{Low: 1000, High: 2000},
			want: []models.ScatterPoint{},
		},
		{
			name: "unknown site",
			site: "Nowhere",
			r:    models.PayloadRange{Low: 0, High: 1000},
			want: []models.ScatterPoint{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterForScatter(table, tt.site, tt.r)
			require.NotNil(t, got)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilterForScatter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterForScatterProperties(t *testing.T) {
	table := launchTable(t)
	r := models.PayloadRange{Low: 500, High: 5300}

	for _, site := range append([]string{models.AllSites}, table.Sites()...) {
		t.Run(site, func(t *testing.T) {
			got := FilterForScatter(table, site, r)

			expected := 0
			table.Each(func(rec models.LaunchRecord) {
				if r.Contains(rec.PayloadMassKg) && (site == models.AllSites || rec.LaunchSite == site) {
					expected++
				}
			})
			assert.Len(t, got, expected)

			for _, p := range got {
				assert.GreaterOrEqual(t, p.PayloadMassKg, r.Low)
				assert.LessOrEqual(t, p.PayloadMassKg, r.High)
				if site != models.AllSites {
					assert.Equal(t, site, p.LaunchSite)
				}
			}
		})
	}
}

func TestIdempotence(t *testing.T) {
	table := launchTable(t)
	r := models.PayloadRange{Low: 0, High: 10000}

	for _, site := range []string{models.AllSites, "KSC LC-39A"} {
		if diff := cmp.Diff(Aggregate(table, site), Aggregate(table, site)); diff != "" {
			t.Errorf("Aggregate(%s) not idempotent:\n%s", site, diff)
		}
		if diff := cmp.Diff(Scatter(table, site, r), Scatter(table, site, r)); diff != "" {
			t.Errorf("Scatter(%s) not idempotent:\n%s", site, diff)
		}
	}
}

func TestScatterTitles(t *testing.T) {
	table := smallTable(t)
	r := models.PayloadRange{Low: 0, High: 300}

	assert.Equal(t, "Success launches to payload mass", Scatter(table, models.AllSites, r).Title)
	assert.Equal(t, "Success launches to payload mass for A", Scatter(table, "A", r).Title)

	chart := Scatter(table, "A", r)
	assert.Equal(t, "A", chart.Site)
	assert.Equal(t, r, chart.Range)
	assert.Len(t, chart.Points, 2)
}

func TestCorrelation(t *testing.T) {
	t.Run("too few points", func(t *testing.T) {
		assert.Nil(t, Correlation(nil))
		assert.Nil(t, Correlation([]models.ScatterPoint{point("A", 100, 1)}))
	})

	t.Run("constant outcome", func(t *testing.T) {
		assert.Nil(t, Correlation([]models.ScatterPoint{point("A", 100, 1), point("A", 200, 1)}))
	})

	t.Run("perfect positive", func(t *testing.T) {
		c := Correlation([]models.ScatterPoint{point("A", 100, 0), point("A", 200, 1)})
		require.NotNil(t, c)
		assert.InDelta(t, 1.0, *c, 1e-9)
	})

	t.Run("negative", func(t *testing.T) {
		c := Correlation([]models.ScatterPoint{
			point("A", 100, 1),
			point("A", 200, 1),
			point("A", 300, 0),
			point("A", 400, 0),
		})
		require.NotNil(t, c)
		assert.Less(t, *c, 0.0)
	})
}
