package portfolio

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"PortfolioPulse/internal/calculator"
	"PortfolioPulse/internal/collector"
	"PortfolioPulse/internal/model"
	"PortfolioPulse/internal/sentiment"
	"PortfolioPulse/internal/strategy"
)

// Analyzer runs the full per-ticker pipeline and the portfolio roll-up.
type Analyzer struct {
	Collector *collector.Collector
	Engine    *strategy.Engine
	Sentiment *sentiment.Analyzer

	// Benchmark is the symbol whose YTD return the portfolio is
	// compared against, fetched once per run.
	Benchmark string

	// Concurrency caps the number of tickers fetched in parallel.
	// 1 means fully sequential.
	Concurrency int

	now func() time.Time
}

// NewAnalyzer wires the pipeline together.
func NewAnalyzer(col *collector.Collector, eng *strategy.Engine, sent *sentiment.Analyzer, benchmark string, concurrency int) *Analyzer {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Analyzer{
		Collector:   col,
		Engine:      eng,
		Sentiment:   sent,
		Benchmark:   benchmark,
		Concurrency: concurrency,
		now:         time.Now,
	}
}

// AnalyzePortfolio is the single entry point: it analyzes every ticker,
// preserving input order, and rolls the results up into a summary. A
// failed ticker never blocks or fails the others.
func (a *Analyzer) AnalyzePortfolio(ctx context.Context, tickers []string) ([]model.StockResult, model.PortfolioSummary) {
	benchmark := a.benchmarkReturn(ctx)

	results := make([]model.StockResult, len(tickers))
	if a.Concurrency == 1 {
		for i, t := range tickers {
			results[i] = a.AnalyzeTicker(ctx, t)
		}
	} else {
		// Bounded fan-out; each goroutine writes only its own slot,
		// so input order survives regardless of completion order.
		sem := make(chan struct{}, a.Concurrency)
		var wg sync.WaitGroup
		for i, t := range tickers {
			wg.Add(1)
			go func(i int, ticker string) {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()
				results[i] = a.AnalyzeTicker(ctx, ticker)
			}(i, t)
		}
		wg.Wait()
	}

	return results, Summarize(results, benchmark)
}

// AnalyzeTicker runs one ticker through collection, normalization and
// the decision engine. It never returns an error: a ticker whose data
// source fails comes back as an all-fallback result tagged Failed.
func (a *Analyzer) AnalyzeTicker(ctx context.Context, ticker string) model.StockResult {
	snap, err := a.Collector.Collect(ctx, ticker)
	if err != nil {
		log.Error().Err(err).Str("ticker", ticker).Msg("ticker analysis failed")
		return failedResult(ticker, err.Error(), a.now())
	}
	return a.buildResult(ticker, snap)
}

func (a *Analyzer) buildResult(ticker string, snap *collector.Snapshot) model.StockResult {
	closes := snap.Prices.Closes()

	var ma50, ma200, rsi, dayChange, ytd *float64
	if v, ok := calculator.MA50(closes); ok {
		ma50 = &v
	}
	if v, ok := calculator.MA200(closes); ok {
		ma200 = &v
	}
	if v, ok := calculator.RSI(closes, 14); ok {
		rsi = &v
	}
	if v, ok := calculator.TrailingChange(snap.Prices, 1); ok {
		dayChange = &v
	}
	if v, ok := calculator.YTDReturn(snap.Prices, a.now()); ok {
		ytd = &v
	}

	sent := a.Sentiment.Score(snap.Headlines)

	assessment := a.Engine.Evaluate(strategy.Input{
		MA50:      ma50,
		MA200:     ma200,
		Sentiment: sent,
		Consensus: snap.Consensus,
	})

	return model.StockResult{
		Ticker:         ticker,
		CurrentPrice:   snap.Prices.CurrentPrice,
		MA50:           ma50,
		MA200:          ma200,
		RSI:            rsi,
		DayChange:      dayChange,
		YTDReturn:      ytd,
		Momentum:       assessment.Momentum,
		Sentiment:      sent,
		Consensus:      snap.Consensus,
		Factors:        assessment.Factors,
		CompositeScore: assessment.Composite,
		Recommendation: assessment.Recommendation,
		Headlines:      snap.Headlines,
		AnalyzedAt:     a.now(),
	}
}

// failedResult carries the defined neutral fallbacks so downstream
// consumers can render it without special cases beyond the Failed flag.
func failedResult(ticker, reason string, at time.Time) model.StockResult {
	return model.StockResult{
		Ticker:         ticker,
		Momentum:       model.MomentumNeutral,
		Sentiment:      model.SentimentResult{Compound: 0, Label: model.SentimentNeutral},
		Consensus:      model.ConsensusUnknown,
		Recommendation: model.RecommendHold,
		Failed:         true,
		FailReason:     reason,
		AnalyzedAt:     at,
	}
}

// benchmarkReturn fetches the benchmark's series once and derives its
// YTD return. Shared read-only across the run; nil when unavailable.
func (a *Analyzer) benchmarkReturn(ctx context.Context) *float64 {
	series, err := a.Collector.Fetcher.FetchPriceSeries(ctx, a.Benchmark)
	if err != nil {
		log.Warn().Err(err).Str("symbol", a.Benchmark).Msg("benchmark fetch failed, skipping comparison")
		return nil
	}
	if v, ok := calculator.YTDReturn(series, a.now()); ok {
		return &v
	}
	return nil
}
