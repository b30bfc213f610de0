package validation

import (
	"math"
	"testing"

	"launchdash/internal/models"
)

type siteSet map[string]bool

func (s siteSet) HasSite(site string) bool { return s[site] }

func TestNormalizeSite(t *testing.T) {
	tests := []struct {
		name string
		site string
		want string
	}{
		{"empty defaults to all", "", models.AllSites},
		{"whitespace defaults to all", "   ", models.AllSites},
		{"upper all", "ALL", models.AllSites},
		{"lower all", "all", models.AllSites},
		{"mixed all", "All", models.AllSites},
		{"site kept", "CCAFS LC-40", "CCAFS LC-40"},
		{"site trimmed", "  KSC LC-39A ", "KSC LC-39A"},
		{"site case kept", "ksc lc-39a", "ksc lc-39a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeSite(tt.site); got != tt.want {
				t.Errorf("NormalizeSite(%q) = %q, want %q", tt.site, got, tt.want)
			}
		})
	}
}

func TestValidateSite(t *testing.T) {
	sites := siteSet{"CCAFS LC-40": true, "VAFB SLC-4E": true}

	tests := []struct {
		name    string
		site    string
		valid   bool
		wantMsg string
	}{
		{"all sites", models.AllSites, true, ""},
		{"known site", "CCAFS LC-40", true, ""},
		{"other known site", "VAFB SLC-4E", true, ""},
		{"unknown site", "Boca Chica", false, "Unknown launch site: Boca Chica"},
		{"wrong case", "ccafs lc-40", false, "Unknown launch site: ccafs lc-40"},
		{"too long", string(make([]byte, 201)), false, "Launch site is too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateSite(tt.site, sites)
			if valid != tt.valid {
				t.Errorf("ValidateSite(%q) valid = %v, want %v", tt.site, valid, tt.valid)
			}
			if !valid && msg != tt.wantMsg {
				t.Errorf("ValidateSite(%q) msg = %q, want %q", tt.site, msg, tt.wantMsg)
			}
		})
	}
}

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		fallback float64
		want     float64
		valid    bool
	}{
		{"empty uses fallback", "", 42, 42, true},
		{"integer", "1000", 0, 1000, true},
		{"decimal", "2534.5", 0, 2534.5, true},
		{"padded", " 500 ", 0, 500, true},
		{"negative accepted", "-10", 0, -10, true},
		{"exponent", "1e3", 0, 1000, true},
		{"word", "heavy", 0, 0, false},
		{"nan rejected", "NaN", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, valid, _ := ParsePayload(tt.raw, tt.fallback)
			if valid != tt.valid {
				t.Fatalf("ParsePayload(%q) valid = %v, want %v", tt.raw, valid, tt.valid)
			}
			if valid && got != tt.want {
				t.Errorf("ParsePayload(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParsePayloadRange(t *testing.T) {
	bounds := models.PayloadRange{Low: 0, High: 9600}

	tests := []struct {
		name    string
		low     string
		high    string
		want    models.PayloadRange
		valid   bool
		wantMsg string
	}{
		{"defaults to bounds", "", "", bounds, true, ""},
		{"explicit range", "1000", "5000", models.PayloadRange{Low: 1000, High: 5000}, true, ""},
		{"only low", "2500", "", models.PayloadRange{Low: 2500, High: 9600}, true, ""},
		{"inverted kept", "5000", "1000", models.PayloadRange{Low: 5000, High: 1000}, true, ""},
		{"beyond bounds kept", "-1", "20000", models.PayloadRange{Low: -1, High: 20000}, true, ""},
		{"infinite high kept", "0", "+Inf", models.PayloadRange{Low: 0, High: math.Inf(1)}, true, ""},
		{"bad low", "x", "10", models.PayloadRange{}, false, "min: Payload bound must be a number"},
		{"bad high", "10", "y", models.PayloadRange{}, false, "max: Payload bound must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, valid, msg := ParsePayloadRange(tt.low, tt.high, bounds)
			if valid != tt.valid {
				t.Fatalf("ParsePayloadRange(%q, %q) valid = %v, want %v", tt.low, tt.high, valid, tt.valid)
			}
			if !valid {
				if msg != tt.wantMsg {
					t.Errorf("msg = %q, want %q", msg, tt.wantMsg)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParsePayloadRange(%q, %q) = %+v, want %+v", tt.low, tt.high, got, tt.want)
			}
		})
	}
}
