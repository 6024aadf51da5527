package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Portfolio struct {
		Tickers   []string `yaml:"tickers"`
		Benchmark string   `yaml:"benchmark"`
	} `yaml:"portfolio"`
	Weights struct {
		Momentum  float64 `yaml:"momentum"`
		Sentiment float64 `yaml:"sentiment"`
		Analyst   float64 `yaml:"analyst"`
	} `yaml:"weights"`
	DataSource struct {
		MaxHeadlines int `yaml:"max_headlines"`
		Concurrency  int `yaml:"concurrency"`
	} `yaml:"data_source"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy    string `yaml:"proxy"`
	LogLevel string `yaml:"log_level"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TICKERS"); v != "" {
		cfg.Portfolio.Tickers = splitTickers(v)
	}
	if v := os.Getenv("BENCHMARK"); v != "" {
		cfg.Portfolio.Benchmark = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_SCHEDULE"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("MAX_HEADLINES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DataSource.MaxHeadlines = n
		}
	}
	if v := os.Getenv("CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DataSource.Concurrency = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	// Defaults
	if cfg.Portfolio.Benchmark == "" {
		cfg.Portfolio.Benchmark = "SPY"
	}
	if cfg.Weights.Momentum == 0 && cfg.Weights.Sentiment == 0 && cfg.Weights.Analyst == 0 {
		cfg.Weights.Momentum = 0.40
		cfg.Weights.Sentiment = 0.30
		cfg.Weights.Analyst = 0.30
	}
	if cfg.DataSource.MaxHeadlines == 0 {
		cfg.DataSource.MaxHeadlines = 5
	}
	if cfg.DataSource.Concurrency == 0 {
		cfg.DataSource.Concurrency = 1
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
// Weight validation is stricter and lives with the strategy engine;
// this only rejects configs that cannot drive a run at all.
func (c *Config) Validate() error {
	if len(c.Portfolio.Tickers) == 0 {
		return fmt.Errorf("portfolio.tickers is required")
	}
	for _, t := range c.Portfolio.Tickers {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("portfolio.tickers contains an empty entry")
		}
	}
	if c.DataSource.MaxHeadlines < 0 {
		return fmt.Errorf("data_source.max_headlines must not be negative")
	}
	if c.DataSource.Concurrency < 1 {
		return fmt.Errorf("data_source.concurrency must be at least 1")
	}
	return nil
}

func splitTickers(s string) []string {
	parts := strings.Split(s, ",")
	tickers := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.ToUpper(strings.TrimSpace(p)); t != "" {
			tickers = append(tickers, t)
		}
	}
	return tickers
}
