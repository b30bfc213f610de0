package models

import (
	"time"

	"github.com/google/uuid"
)

// DatasetResponse describes the loaded dataset and the control bounds.
type DatasetResponse struct {
	ID         uuid.UUID    `json:"id"`
	Source     string       `json:"source"`
	LoadedAt   time.Time    `json:"loaded_at"`
	Records    int          `json:"records"`
	MinPayload float64      `json:"min_payload"`
	MaxPayload float64      `json:"max_payload"`
	Sites      []SiteOption `json:"sites"`
	Summary    Summary      `json:"summary"`
}

// Summary holds descriptive statistics for a set of launches.
type Summary struct {
	Records       int     `json:"records"`
	Successes     int     `json:"successes"`
	SuccessRate   float64 `json:"success_rate"`
	PayloadMean   float64 `json:"payload_mean"`
	PayloadMedian float64 `json:"payload_median"`
	PayloadStdDev float64 `json:"payload_std_dev"`
	PayloadP25    float64 `json:"payload_p25"`
	PayloadP75    float64 `json:"payload_p75"`
}
