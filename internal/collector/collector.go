package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"PortfolioPulse/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series    map[string]*model.PriceSeries
	Headlines map[string][]model.Headline
	Consensus map[string]model.AnalystConsensus

	// Per-ticker error injection, keyed by ticker.
	PriceErr     map[string]error
	HeadlineErr  map[string]error
	ConsensusErr map[string]error
}

func NewMockFetcher() *MockFetcher {
	return &MockFetcher{
		Series:       map[string]*model.PriceSeries{},
		Headlines:    map[string][]model.Headline{},
		Consensus:    map[string]model.AnalystConsensus{},
		PriceErr:     map[string]error{},
		HeadlineErr:  map[string]error{},
		ConsensusErr: map[string]error{},
	}
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchPriceSeries(_ context.Context, ticker string) (*model.PriceSeries, error) {
	if err := m.PriceErr[ticker]; err != nil {
		return nil, err
	}
	if s, ok := m.Series[ticker]; ok {
		return s, nil
	}
	return GenerateMockSeries(ticker, 100, 260), nil
}

func (m *MockFetcher) FetchHeadlines(_ context.Context, ticker string, limit int) ([]model.Headline, error) {
	if err := m.HeadlineErr[ticker]; err != nil {
		return nil, err
	}
	hs := m.Headlines[ticker]
	if len(hs) > limit {
		hs = hs[:limit]
	}
	return hs, nil
}

func (m *MockFetcher) FetchAnalystConsensus(_ context.Context, ticker string) (model.AnalystConsensus, error) {
	if err := m.ConsensusErr[ticker]; err != nil {
		return model.ConsensusUnknown, err
	}
	if c, ok := m.Consensus[ticker]; ok {
		return c, nil
	}
	return model.ConsensusUnknown, nil
}

// GenerateMockSeries builds a gently drifting daily close series ending today.
func GenerateMockSeries(ticker string, basePrice float64, count int) *model.PriceSeries {
	points := make([]model.ClosePoint, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		points[i] = model.ClosePoint{
			Date:  time.Now().AddDate(0, 0, -(count - 1 - i)),
			Close: p,
		}
	}
	return &model.PriceSeries{
		Ticker:       ticker,
		Points:       points,
		CurrentPrice: points[count-1].Close,
		FetchedAt:    time.Now(),
	}
}

// Snapshot holds everything fetched for one ticker before scoring.
type Snapshot struct {
	Prices    *model.PriceSeries
	Headlines []model.Headline
	Consensus model.AnalystConsensus
}

// Collector gathers raw per-ticker signals from a Fetcher.
type Collector struct {
	Fetcher      Fetcher
	MaxHeadlines int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, maxHeadlines int) *Collector {
	return &Collector{Fetcher: fetcher, MaxHeadlines: maxHeadlines}
}

// Collect fetches one ticker's signals. A price-series failure is
// returned as an error since nothing can be analyzed without a price;
// headline and consensus failures degrade to their fallbacks (empty
// list, Unknown) so the ticker still gets a full result row.
func (c *Collector) Collect(ctx context.Context, ticker string) (*Snapshot, error) {
	prices, err := c.Fetcher.FetchPriceSeries(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("fetch price series: %w", err)
	}

	snap := &Snapshot{Prices: prices, Consensus: model.ConsensusUnknown}

	headlines, err := c.Fetcher.FetchHeadlines(ctx, ticker, c.MaxHeadlines)
	if err != nil {
		log.Warn().Err(err).Str("ticker", ticker).Msg("headline fetch failed, scoring without news")
	} else {
		snap.Headlines = headlines
	}

	consensus, err := c.Fetcher.FetchAnalystConsensus(ctx, ticker)
	if err != nil {
		log.Warn().Err(err).Str("ticker", ticker).Msg("analyst consensus fetch failed, using Unknown")
	} else {
		snap.Consensus = consensus
	}

	return snap, nil
}
