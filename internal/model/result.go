package model

import "time"

// StockResult is the per-ticker outcome of one analysis run.
// Immutable after creation; nil pointer fields mean the underlying data
// was unavailable, which is a defined condition rather than an error.
type StockResult struct {
	Ticker       string
	CurrentPrice float64
	MA50         *float64
	MA200        *float64
	RSI          *float64 // display only, not scored
	DayChange    *float64 // percent, display only
	YTDReturn    *float64 // percent; nil without a start-of-year close

	Momentum       MomentumSignal
	Sentiment      SentimentResult
	Consensus      AnalystConsensus
	Factors        []FactorScore
	CompositeScore float64
	Recommendation Recommendation

	Headlines []Headline

	// Failed marks a ticker whose data source errored out entirely.
	// All signal fields carry their neutral fallbacks in that case.
	Failed     bool
	FailReason string

	AnalyzedAt time.Time
}

// PortfolioSummary aggregates one run's StockResults. Recomputed fully
// on every run. Nil means/returns signal "no data", never zero.
type PortfolioSummary struct {
	TotalStocks  int
	FailedStocks int

	BuyMoreCount         int
	HoldCount            int
	ConsiderSellingCount int

	BullishCount         int
	BearishCount         int
	NeutralMomentumCount int

	ConsensusBuyCount     int
	ConsensusHoldCount    int
	ConsensusSellCount    int
	ConsensusUnknownCount int

	AvgSentiment    *float64
	PortfolioReturn *float64 // equal-weighted mean YTD return, percent
	BenchmarkReturn *float64 // benchmark YTD return, percent
	Outperformance  *float64 // portfolio minus benchmark
}
