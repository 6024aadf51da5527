package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"PortfolioPulse/internal/collector"
	"PortfolioPulse/internal/config"
	"PortfolioPulse/internal/notifier"
	"PortfolioPulse/internal/portfolio"
	"PortfolioPulse/internal/scheduler"
	"PortfolioPulse/internal/sentiment"
	"PortfolioPulse/internal/strategy"
)

func main() {
	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	setupLogging(cfg.LogLevel)
	log.Info().Msg("PortfolioPulse starting")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	// Weights are validated before any ticker is processed; a bad
	// weight set would corrupt every composite score.
	engine, err := strategy.NewEngine(strategy.Weights{
		Momentum:  cfg.Weights.Momentum,
		Sentiment: cfg.Weights.Sentiment,
		Analyst:   cfg.Weights.Analyst,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("weight configuration")
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if os.Getenv("USE_MOCK_DATA") == "true" {
		fetcher = collector.NewMockFetcher()
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Info().Str("source", fetcher.Name()).Strs("tickers", cfg.Portfolio.Tickers).Msg("data source ready")

	col := collector.NewCollector(fetcher, cfg.DataSource.MaxHeadlines)
	analyzer := portfolio.NewAnalyzer(col, engine, sentiment.NewAnalyzer(), cfg.Portfolio.Benchmark, cfg.DataSource.Concurrency)
	tg := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// One-shot analysis
	results, summary := analyzer.AnalyzePortfolio(ctx, cfg.Portfolio.Tickers)
	report := notifier.FormatPortfolioReport(results, summary, time.Now())
	fmt.Println(report)

	if tg.Enabled() {
		if err := tg.SendWithRetry(ctx, report, 3); err != nil {
			log.Error().Err(err).Msg("report delivery failed")
		}
	}

	// Watch mode: keep re-running on the configured cron schedule.
	if cfg.Schedule.Cron == "" {
		return
	}

	sched := scheduler.NewScheduler(ctx, analyzer, tg, cfg.Portfolio.Tickers)
	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatal().Err(err).Msg("register cron task")
	}
	sched.Start()
	defer sched.Stop()

	log.Info().Str("cron", cfg.Schedule.Cron).Msg("watch mode active, press Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
