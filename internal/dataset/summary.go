package dataset

import (
	"github.com/montanaflynn/stats"

	"launchdash/internal/models"
)

// Summarize computes descriptive statistics over records.
// Quartiles use the nearest-rank method so tables of any size have them.
// An empty input returns a zero Summary.
func Summarize(records []models.LaunchRecord) (models.Summary, error) {
	var s models.Summary
	if len(records) == 0 {
		return s, nil
	}

	payloads := make([]float64, len(records))
	for i, r := range records {
		payloads[i] = r.PayloadMassKg
		if r.IsSuccess() {
			s.Successes++
		}
	}
	s.Records = len(records)
	s.SuccessRate = float64(s.Successes) / float64(s.Records)

	var err error
	if s.PayloadMean, err = stats.Mean(payloads); err != nil {
		return s, err
	}
	if s.PayloadMedian, err = stats.Median(payloads); err != nil {
		return s, err
	}
	if s.PayloadStdDev, err = stats.StandardDeviation(payloads); err != nil {
		return s, err
	}
	if s.PayloadP25, err = stats.PercentileNearestRank(payloads, 25); err != nil {
		return s, err
	}
	if s.PayloadP75, err = stats.PercentileNearestRank(payloads, 75); err != nil {
		return s, err
	}
	return s, nil
}

// Summary computes statistics over the whole table.
func (t *Table) Summary() (models.Summary, error) {
	return Summarize(t.records)
}
