package models

import "strconv"

// Site filter sentinel meaning "no site filter".
const AllSites = "ALL"

// Outcome class constants
const (
	OutcomeFailure = 0
	OutcomeSuccess = 1
)

// LaunchRecord is one row of the launch dataset.
type LaunchRecord struct {
	LaunchSite    string  `json:"launch_site"`
	PayloadMassKg float64 `json:"payload_mass_kg"`
	OutcomeClass  int     `json:"class"`
}

// IsSuccess returns true if the launch outcome was a success.
func (r LaunchRecord) IsSuccess() bool {
	return r.OutcomeClass == OutcomeSuccess
}

// OutcomeLabel returns the outcome class as a chart label ("0" or "1").
func OutcomeLabel(class int) string {
	return strconv.Itoa(class)
}

// SiteOption is one entry of the launch site dropdown.
type SiteOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
