package model

// MomentumSignal is the directional read of MA50 vs MA200.
type MomentumSignal string

const (
	MomentumBullish MomentumSignal = "Bullish"
	MomentumBearish MomentumSignal = "Bearish"
	MomentumNeutral MomentumSignal = "Neutral"
)

// SentimentLabel classifies an averaged compound score.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "Positive"
	SentimentNegative SentimentLabel = "Negative"
	SentimentNeutral  SentimentLabel = "Neutral"
)

// SentimentResult holds the averaged compound score for a ticker's
// headlines and its categorical label. Compound is always in [-1, 1].
type SentimentResult struct {
	Compound float64
	Label    SentimentLabel
}

// AnalystConsensus is the categorical aggregate analyst rating.
// Unknown is the fallback when the consensus text is absent or unparseable.
type AnalystConsensus string

const (
	ConsensusBuy     AnalystConsensus = "Buy"
	ConsensusHold    AnalystConsensus = "Hold"
	ConsensusSell    AnalystConsensus = "Sell"
	ConsensusUnknown AnalystConsensus = "Unknown"
)

// Recommendation is the final per-ticker action.
type Recommendation string

const (
	RecommendBuyMore         Recommendation = "Buy More"
	RecommendHold            Recommendation = "Hold"
	RecommendConsiderSelling Recommendation = "Consider Selling"
)

// FactorScore represents a single factor's scoring result.
type FactorScore struct {
	Name       string
	RawScore   float64
	Weight     float64
	Weighted   float64
	Commentary string
}
