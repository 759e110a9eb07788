package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the page chrome shared by every block in one aggregation
// session. It is read-only once handed to a builder.
type Config struct {
	Title     string `yaml:"title" json:"title"`
	CustomCSS string `yaml:"custom_css" json:"custom_css"`
	CustomJS  string `yaml:"custom_js" json:"custom_js"`
}

// DefaultTitle is used when a config omits the document title.
const DefaultTitle = "Rendered HTML"

// ParseConfig decodes a YAML document into a Config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("model: parse config: %w", err)
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	return cfg, nil
}

// LoadConfig reads a YAML config file from disk.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("model: read config: %w", err)
	}
	return ParseConfig(data)
}
