package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
portfolio:
  tickers: [AAPL, MSFT]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"AAPL", "MSFT"}, cfg.Portfolio.Tickers)
	assert.Equal(t, "SPY", cfg.Portfolio.Benchmark)
	assert.Equal(t, 0.40, cfg.Weights.Momentum)
	assert.Equal(t, 0.30, cfg.Weights.Sentiment)
	assert.Equal(t, 0.30, cfg.Weights.Analyst)
	assert.Equal(t, 5, cfg.DataSource.MaxHeadlines)
	assert.Equal(t, 1, cfg.DataSource.Concurrency)
	assert.Equal(t, "info", cfg.LogLevel)

	require.NoError(t, cfg.Validate())
}

func TestLoad_ExplicitWeightsKept(t *testing.T) {
	path := writeConfig(t, `
portfolio:
  tickers: [AAPL]
weights:
  momentum: 0.5
  sentiment: 0.25
  analyst: 0.25
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Weights.Momentum)
	assert.Equal(t, 0.25, cfg.Weights.Sentiment)
	assert.Equal(t, 0.25, cfg.Weights.Analyst)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
portfolio:
  tickers: [AAPL]
`)
	t.Setenv("TICKERS", "tsla, nvda ,amd")
	t.Setenv("BENCHMARK", "VOO")
	t.Setenv("CONCURRENCY", "4")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"TSLA", "NVDA", "AMD"}, cfg.Portfolio.Tickers)
	assert.Equal(t, "VOO", cfg.Portfolio.Benchmark)
	assert.Equal(t, 4, cfg.DataSource.Concurrency)
}

func TestLoad_MissingFileTolerated(t *testing.T) {
	t.Setenv("TICKERS", "AAPL")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
}

func TestValidate_Errors(t *testing.T) {
	cfg := &Config{}
	cfg.DataSource.MaxHeadlines = 5
	cfg.DataSource.Concurrency = 1
	assert.Error(t, cfg.Validate(), "tickers are required")

	cfg.Portfolio.Tickers = []string{"AAPL", " "}
	assert.Error(t, cfg.Validate(), "blank ticker entries rejected")

	cfg.Portfolio.Tickers = []string{"AAPL"}
	cfg.DataSource.Concurrency = 0
	assert.Error(t, cfg.Validate(), "concurrency below 1 rejected")

	cfg.DataSource.Concurrency = 2
	assert.NoError(t, cfg.Validate())
}
