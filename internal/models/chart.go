package models

// Slice is one labeled segment of a pie chart.
type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// PieChart is the data a renderer needs to draw the launch outcome pie.
type PieChart struct {
	Title  string  `json:"title"`
	Site   string  `json:"site"`
	Slices []Slice `json:"slices"`
}

// Labels returns the slice labels in order.
func (p *PieChart) Labels() []string {
	labels := make([]string, len(p.Slices))
	for i, s := range p.Slices {
		labels[i] = s.Label
	}
	return labels
}

// Total returns the sum of all slice values.
func (p *PieChart) Total() float64 {
	var total float64
	for _, s := range p.Slices {
		total += s.Value
	}
	return total
}

// PayloadRange is a closed payload mass interval in kilograms.
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether mass lies within [Low, High].
func (r PayloadRange) Contains(mass float64) bool {
	return r.Low <= mass && mass <= r.High
}

// ScatterPoint is one plotted launch.
type ScatterPoint struct {
	LaunchSite    string  `json:"launch_site"`
	PayloadMassKg float64 `json:"x"`
	OutcomeClass  int     `json:"y"`
}

// ScatterChart is the data a renderer needs to draw payload vs. outcome.
type ScatterChart struct {
	Title  string         `json:"title"`
	Site   string         `json:"site"`
	Range  PayloadRange   `json:"range"`
	Points []ScatterPoint `json:"points"`

	// Correlation is the Pearson coefficient between payload and outcome,
	// nil when undefined for the plotted points.
	Correlation *float64 `json:"correlation,omitempty"`
}
