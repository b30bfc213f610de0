package validation

import (
	"math"
	"strconv"
	"strings"

	"launchdash/internal/models"
)

// SiteLookup reports whether a launch site exists in the loaded dataset.
type SiteLookup interface {
	HasSite(site string) bool
}

// NormalizeSite trims whitespace and maps any casing of "all" (or an empty
// value) to the ALL sentinel. Site identifiers are otherwise case-sensitive.
func NormalizeSite(site string) string {
	site = strings.TrimSpace(site)
	if site == "" || strings.EqualFold(site, models.AllSites) {
		return models.AllSites
	}
	return site
}

// ValidateSite checks that site is ALL or a site present in the dataset.
func ValidateSite(site string, sites SiteLookup) (bool, string) {
	if site == models.AllSites {
		return true, ""
	}
	if len(site) > 200 {
		return false, "Launch site is too long"
	}
	if !sites.HasSite(site) {
		return false, "Unknown launch site: " + site
	}
	return true, ""
}

// ParsePayload parses a payload mass bound. Empty input returns fallback.
func ParsePayload(raw string, fallback float64) (float64, bool, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, true, ""
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, "Payload bound must be a number"
	}
	if math.IsNaN(v) {
		return 0, false, "Payload bound must be a number"
	}
	return v, true, ""
}

// ParsePayloadRange parses the low/high query values of the range control.
// Missing bounds default to the dataset bounds. Out-of-range and inverted
// values are accepted; filtering simply matches fewer (or no) launches.
func ParsePayloadRange(low, high string, bounds models.PayloadRange) (models.PayloadRange, bool, string) {
	lo, ok, msg := ParsePayload(low, bounds.Low)
	if !ok {
		return models.PayloadRange{}, false, "min: " + msg
	}
	hi, ok, msg := ParsePayload(high, bounds.High)
	if !ok {
		return models.PayloadRange{}, false, "max: " + msg
	}
	return models.PayloadRange{Low: lo, High: hi}, true, ""
}
