package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"launchdash/internal/dataset"
	"launchdash/internal/models"
)

var (
	siteRecordsDesc = prometheus.NewDesc(
		"launchdash_dataset_launches",
		"Launch records in the loaded dataset by site",
		[]string{"site"},
		nil,
	)
	siteSuccessesDesc = prometheus.NewDesc(
		"launchdash_dataset_successes",
		"Successful launches in the loaded dataset by site",
		[]string{"site"},
		nil,
	)
	payloadBoundDesc = prometheus.NewDesc(
		"launchdash_dataset_payload_kg",
		"Payload mass bounds of the loaded dataset",
		[]string{"bound"},
		nil,
	)
	loadedAtDesc = prometheus.NewDesc(
		"launchdash_dataset_loaded_timestamp_seconds",
		"Unix time the current dataset was loaded",
		nil,
		nil,
	)

	chartRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launchdash_chart_requests_total",
			Help: "Chart data requests by chart and site filter",
		},
		[]string{"chart", "site"},
	)
	datasetReloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launchdash_dataset_reloads_total",
			Help: "Dataset reload attempts by outcome",
		},
		[]string{"outcome"},
	)
)

// Chart names used as metric labels.
const (
	ChartPie     = "pie"
	ChartScatter = "scatter"
)

// Reload outcome labels.
const (
	ReloadSucceeded = "succeeded"
	ReloadFailed    = "failed"
)

// DatasetCollector is a custom Prometheus collector that reads the current
// dataset on each scrape.
type DatasetCollector struct {
	holder *dataset.Holder
}

// NewDatasetCollector creates a collector over holder.
func NewDatasetCollector(holder *dataset.Holder) *DatasetCollector {
	return &DatasetCollector{holder: holder}
}

// Describe sends the metric descriptors to the channel.
func (c *DatasetCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- siteRecordsDesc
	ch <- siteSuccessesDesc
	ch <- payloadBoundDesc
	ch <- loadedAtDesc
}

// Collect emits per-site counts and payload bounds for the current table.
func (c *DatasetCollector) Collect(ch chan<- prometheus.Metric) {
	t := c.holder.Current()
	if t == nil {
		return
	}

	launches := map[string]int{}
	successes := map[string]int{}
	t.Each(func(r models.LaunchRecord) {
		launches[r.LaunchSite]++
		successes[r.LaunchSite] += r.OutcomeClass
	})

	for _, site := range t.Sites() {
		ch <- prometheus.MustNewConstMetric(siteRecordsDesc, prometheus.GaugeValue, float64(launches[site]), site)
		ch <- prometheus.MustNewConstMetric(siteSuccessesDesc, prometheus.GaugeValue, float64(successes[site]), site)
	}
	ch <- prometheus.MustNewConstMetric(payloadBoundDesc, prometheus.GaugeValue, t.MinPayload(), "min")
	ch <- prometheus.MustNewConstMetric(payloadBoundDesc, prometheus.GaugeValue, t.MaxPayload(), "max")
	ch <- prometheus.MustNewConstMetric(loadedAtDesc, prometheus.GaugeValue, float64(t.LoadedAt().Unix()))
}

var initOnce sync.Once

// Init registers the collectors with the default registry.
// Must be called once at startup; later calls are no-ops.
func Init(holder *dataset.Holder) {
	initOnce.Do(func() {
		prometheus.MustRegister(NewDatasetCollector(holder), chartRequests, datasetReloads)
	})
}

// RecordChartRequest counts one chart data request.
func RecordChartRequest(chart, site string) {
	chartRequests.WithLabelValues(chart, site).Inc()
}

// RecordReload counts one dataset reload attempt.
func RecordReload(outcome string) {
	datasetReloads.WithLabelValues(outcome).Inc()
}
