package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSliderStep is the payload range control step in kilograms.
const DefaultSliderStep = 1000

// YAMLConfig represents the structure of the config.yaml file.
// Presentation settings that are awkward to express as env vars.
type YAMLConfig struct {
	AllSitesLabel string            `yaml:"all_sites_label"`
	DefaultSite   string            `yaml:"default_site"`
	SiteLabels    map[string]string `yaml:"site_labels"` // Site id -> dropdown label
	Slider        SliderConfig      `yaml:"slider"`
}

// SliderConfig configures the payload range control.
type SliderConfig struct {
	Step  float64   `yaml:"step"`
	Marks []float64 `yaml:"marks,omitempty"`
}

// LoadYAMLConfig loads the YAML configuration file at path.
// Returns defaults without error if the config file doesn't exist.
func LoadYAMLConfig(path string) (*YAMLConfig, error) {
	var cfg YAMLConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		// Config file is optional
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *YAMLConfig) applyDefaults() {
	if c.AllSitesLabel == "" {
		c.AllSitesLabel = "All sites"
	}
	if c.DefaultSite == "" {
		c.DefaultSite = "ALL"
	}
	if c.Slider.Step <= 0 {
		c.Slider.Step = DefaultSliderStep
	}
}

// DefaultYAMLConfig returns the presentation defaults.
func DefaultYAMLConfig() *YAMLConfig {
	cfg := &YAMLConfig{}
	cfg.applyDefaults()
	return cfg
}
