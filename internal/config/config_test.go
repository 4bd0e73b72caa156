package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/flyer/model"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"OPENAI_API_KEY", "GEMINI_API_KEY", "FLYER_LLM_API_KEY", "FLYER_DATABASE_URL"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flyer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, float64(50), cfg.Layout.Margin)
	assert.True(t, cfg.Render.Compress)
	assert.Equal(t, 15*time.Second, cfg.GetLLMTimeout())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
listen: 127.0.0.1:9000
registry: templates.yaml
database_url: postgres://localhost/flyer
llm:
  provider: gemini
  model: gemini-2.5-flash
  api_key: from-file
  timeout: 5s
layout:
  margin: 36
  paper: letter
  fonts: go
  paginate: true
render:
  compress: false
log:
  debug: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	assert.Equal(t, "templates.yaml", cfg.Registry)
	assert.Equal(t, "postgres://localhost/flyer", cfg.DatabaseURL)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "from-file", cfg.LLM.APIKey)
	assert.Equal(t, 5*time.Second, cfg.GetLLMTimeout())
	assert.Equal(t, float64(36), cfg.Layout.Margin)
	assert.Equal(t, "go", cfg.Layout.Fonts)
	assert.True(t, cfg.Layout.Paginate)
	assert.False(t, cfg.Render.Compress)
	assert.True(t, cfg.Log.Debug)

	size, err := cfg.PaperSize()
	require.NoError(t, err)
	assert.Equal(t, model.Letter, size)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"bad yaml", "listen: [", "failed to parse config"},
		{"bad provider", "llm: {provider: carrier-pigeon}", "invalid LLM provider"},
		{"bad timeout", "llm: {timeout: soon}", "invalid LLM timeout"},
		{"bad fonts", "layout: {fonts: comic}", "unknown font family"},
		{"bad paper", "layout: {paper: legal}", "unknown paper size"},
		{"negative margin", "layout: {margin: -1}", "margin must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Run("OPENAI_API_KEY sets provider", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("OPENAI_API_KEY", "oa-key")

		cfg := &Config{LLM: LLMConfig{Provider: "none"}}
		cfg.applyEnvOverrides()

		assert.Equal(t, "oa-key", cfg.LLM.APIKey)
		assert.Equal(t, "openai", cfg.LLM.Provider)
	})

	t.Run("GEMINI_API_KEY overrides OPENAI_API_KEY", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("OPENAI_API_KEY", "oa-key")
		t.Setenv("GEMINI_API_KEY", "gm-key")

		cfg := &Config{}
		cfg.applyEnvOverrides()

		assert.Equal(t, "gm-key", cfg.LLM.APIKey)
		assert.Equal(t, "gemini", cfg.LLM.Provider)
	})

	t.Run("FLYER_LLM_API_KEY keeps provider", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("FLYER_LLM_API_KEY", "generic")

		cfg := &Config{LLM: LLMConfig{Provider: "gemini"}}
		cfg.applyEnvOverrides()

		assert.Equal(t, "generic", cfg.LLM.APIKey)
		assert.Equal(t, "gemini", cfg.LLM.Provider)
	})

	t.Run("FLYER_DATABASE_URL", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("FLYER_DATABASE_URL", "postgres://db/flyer")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "postgres://db/flyer", cfg.DatabaseURL)
	})
}

func TestGetLLMTimeout_Invalid(t *testing.T) {
	cfg := &Config{LLM: LLMConfig{Timeout: ""}}
	assert.Zero(t, cfg.GetLLMTimeout())
}
