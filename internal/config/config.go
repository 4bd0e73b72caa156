// Package config loads the flyer service and CLI configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/flyer/font"
	"github.com/tsawler/flyer/model"
)

// Config holds all flyer configuration.
type Config struct {
	// Listen is the HTTP listen address for "flyer serve".
	Listen string `yaml:"listen"`

	// Registry is an optional template registry file. Empty uses the
	// embedded registry.
	Registry string `yaml:"registry"`

	// Projects is an optional YAML file of project records.
	Projects string `yaml:"projects"`

	// DatabaseURL selects the PostgreSQL project store when set.
	DatabaseURL string `yaml:"database_url"`

	LLM    LLMConfig    `yaml:"llm"`
	Layout LayoutConfig `yaml:"layout"`
	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`
}

// LLMConfig configures the summary service.
type LLMConfig struct {
	Provider string `yaml:"provider"` // openai, gemini, none
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
	Timeout  string `yaml:"timeout"`
}

// LayoutConfig configures page layout.
type LayoutConfig struct {
	Margin   float64 `yaml:"margin"`
	Paper    string  `yaml:"paper"` // A4, Letter
	Fonts    string  `yaml:"fonts"` // helvetica, go
	Paginate bool    `yaml:"paginate"`
}

// RenderConfig configures PDF output.
type RenderConfig struct {
	Compress bool `yaml:"compress"`
}

// LogConfig configures logging.
type LogConfig struct {
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen: ":8080",
		LLM: LLMConfig{
			Provider: "openai",
			Timeout:  "15s",
		},
		Layout: LayoutConfig{
			Margin: 50,
			Paper:  "A4",
			Fonts:  font.DefaultFamily,
		},
		Render: RenderConfig{
			Compress: true,
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	// Provider specific keys switch the provider; the generic key does not.
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		c.LLM.APIKey = key
		c.LLM.Provider = "openai"
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.LLM.APIKey = key
		c.LLM.Provider = "gemini"
	}
	if key := os.Getenv("FLYER_LLM_API_KEY"); key != "" {
		c.LLM.APIKey = key
	}

	if url := os.Getenv("FLYER_DATABASE_URL"); url != "" {
		c.DatabaseURL = url
	}
}

// ValidProviders lists the supported summary providers.
var ValidProviders = []string{"openai", "gemini", "none", ""}

// Validate validates the configuration.
func (c *Config) Validate() error {
	provider := strings.ToLower(c.LLM.Provider)
	valid := false
	for _, p := range ValidProviders {
		if provider == p {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid LLM provider: %s (valid: openai, gemini, none)", c.LLM.Provider)
	}

	if c.LLM.Timeout != "" {
		if _, err := time.ParseDuration(c.LLM.Timeout); err != nil {
			return fmt.Errorf("invalid LLM timeout %q: %w", c.LLM.Timeout, err)
		}
	}

	if _, err := font.Lookup(c.Layout.Fonts); err != nil {
		return err
	}
	if _, err := c.PaperSize(); err != nil {
		return err
	}
	if c.Layout.Margin < 0 {
		return fmt.Errorf("margin must not be negative")
	}
	return nil
}

// GetLLMTimeout returns the LLM timeout as a duration. Zero means the
// summary package default.
func (c *Config) GetLLMTimeout() time.Duration {
	d, err := time.ParseDuration(c.LLM.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// PaperSize returns the configured page size. Empty selects A4.
func (c *Config) PaperSize() (model.PaperSize, error) {
	if c.Layout.Paper == "" {
		return model.A4, nil
	}
	size, ok := model.PaperByName(c.Layout.Paper)
	if !ok {
		return model.PaperSize{}, fmt.Errorf("unknown paper size %q", c.Layout.Paper)
	}
	return size, nil
}
