// Package models defines the data structures shared across the scraper:
// tabular datasets, section reports, and runtime configuration.
package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values used when config.yaml is absent or leaves a field empty.
const (
	DefaultPopulationURL = "https://en.wikipedia.org/wiki/List_of_countries_and_dependencies_by_population"
	DefaultUserAgent     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	DefaultTopN          = 10
	DefaultFetchTimeout  = 10 * time.Second
)

// Duration wraps time.Duration so YAML configs can use "10s" syntax.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// ChartConfig controls where the population chart is written.
type ChartConfig struct {
	OutputDir  string `yaml:"output_dir"`
	FileName   string `yaml:"file_name"`
	OpenViewer bool   `yaml:"open_viewer"`
}

// Config holds runtime configuration for both pipelines.
type Config struct {
	PopulationURL  string      `yaml:"population_url"`
	UserAgent      string      `yaml:"user_agent"`
	TopN           int         `yaml:"top_n"`
	FetchTimeout   Duration    `yaml:"fetch_timeout"`
	Chart          ChartConfig `yaml:"chart"`
	DetectLanguage bool        `yaml:"detect_language"`
	HistoryDB      bool        `yaml:"history_db"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		PopulationURL: DefaultPopulationURL,
		UserAgent:     DefaultUserAgent,
		TopN:          DefaultTopN,
		FetchTimeout:  Duration(DefaultFetchTimeout),
		Chart: ChartConfig{
			OutputDir:  "charts",
			FileName:   "top_10_population.png",
			OpenViewer: true,
		},
		DetectLanguage: false,
		HistoryDB:      true,
	}
}

// LoadConfig reads a YAML config file and overlays it on the defaults.
// A missing file is not an error: defaults are returned as-is.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Re-fill anything the file blanked out.
	if config.PopulationURL == "" {
		config.PopulationURL = DefaultPopulationURL
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if config.TopN <= 0 {
		config.TopN = DefaultTopN
	}
	if config.FetchTimeout <= 0 {
		config.FetchTimeout = Duration(DefaultFetchTimeout)
	}
	if config.Chart.OutputDir == "" {
		config.Chart.OutputDir = "charts"
	}
	if config.Chart.FileName == "" {
		config.Chart.FileName = "top_10_population.png"
	}

	return config, nil
}
