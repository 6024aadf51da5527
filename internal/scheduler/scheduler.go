package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"PortfolioPulse/internal/notifier"
	"PortfolioPulse/internal/portfolio"
)

// Scheduler re-runs the portfolio analysis on a cron schedule and
// delivers the report (watch mode).
type Scheduler struct {
	Cron     *cron.Cron
	Analyzer *portfolio.Analyzer
	Telegram *notifier.TelegramNotifier
	Tickers  []string
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, analyzer *portfolio.Analyzer, tg *notifier.TelegramNotifier, tickers []string) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Analyzer: analyzer,
		Telegram: tg,
		Tickers:  tickers,
		Ctx:      ctx,
	}
}

// Register adds the analysis task under the given cron expression.
func (s *Scheduler) Register(cronSpec string) error {
	if _, err := s.Cron.AddFunc(cronSpec, s.RunNow); err != nil {
		return fmt.Errorf("register analysis task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// RunNow executes the analysis task immediately.
func (s *Scheduler) RunNow() {
	log.Info().Int("tickers", len(s.Tickers)).Msg("running scheduled analysis")

	results, summary := s.Analyzer.AnalyzePortfolio(s.Ctx, s.Tickers)
	report := notifier.FormatPortfolioReport(results, summary, time.Now())

	fmt.Println(report)

	if s.Telegram.Enabled() {
		if err := s.Telegram.SendWithRetry(s.Ctx, report, 3); err != nil {
			log.Error().Err(err).Msg("report delivery failed")
		}
	}
}
