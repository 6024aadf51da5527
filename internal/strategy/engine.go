package strategy

import (
	"fmt"
	"math"

	"PortfolioPulse/internal/model"
)

// Weights assigns the fixed factor weights. They must be non-negative
// and sum to 1.0, which bounds every composite score to [-1, 1].
type Weights struct {
	Momentum  float64
	Sentiment float64
	Analyst   float64
}

// DefaultWeights is the standard 40/30/30 split.
var DefaultWeights = Weights{Momentum: 0.40, Sentiment: 0.30, Analyst: 0.30}

const weightSumTolerance = 1e-9

// Validate rejects weight sets that would silently corrupt every
// composite score. Must pass before any ticker is processed.
func (w Weights) Validate() error {
	if w.Momentum < 0 || w.Sentiment < 0 || w.Analyst < 0 {
		return fmt.Errorf("weights must be non-negative: momentum=%.3f sentiment=%.3f analyst=%.3f",
			w.Momentum, w.Sentiment, w.Analyst)
	}
	sum := w.Momentum + w.Sentiment + w.Analyst
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %.6f", sum)
	}
	return nil
}

// Input carries one ticker's normalized signals. Nil moving averages
// and Unknown consensus are the documented missing-data fallbacks, so
// Evaluate never has to handle failures itself.
type Input struct {
	MA50      *float64
	MA200     *float64
	Sentiment model.SentimentResult
	Consensus model.AnalystConsensus
}

// Assessment is the engine's output for one ticker.
type Assessment struct {
	Momentum       model.MomentumSignal
	Factors        []model.FactorScore
	Composite      float64
	Recommendation model.Recommendation
}

// Engine combines the three sub-signals into a composite score and a
// recommendation. It is a pure function of its inputs.
type Engine struct {
	weights Weights
}

// NewEngine validates the weights and returns an Engine.
func NewEngine(w Weights) (*Engine, error) {
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weights: %w", err)
	}
	return &Engine{weights: w}, nil
}

// Evaluate scores one ticker. It never fails: missing signals arrive as
// their fallback values and score 0.
func (e *Engine) Evaluate(in Input) Assessment {
	fMomentum, momentum := scoreMomentum(in.MA50, in.MA200, e.weights.Momentum)
	fSentiment := scoreSentiment(in.Sentiment.Compound, e.weights.Sentiment)
	fAnalyst := scoreAnalyst(in.Consensus, e.weights.Analyst)

	composite := fMomentum.Weighted + fSentiment.Weighted + fAnalyst.Weighted

	return Assessment{
		Momentum:       momentum,
		Factors:        []model.FactorScore{fMomentum, fSentiment, fAnalyst},
		Composite:      composite,
		Recommendation: mapRecommendation(composite),
	}
}

// mapRecommendation maps a composite score to an action, first match
// wins. The Hold band is asymmetric on purpose: the strategy is slower
// to sell than to buy.
func mapRecommendation(score float64) model.Recommendation {
	switch {
	case score > 0.5:
		return model.RecommendBuyMore
	case score < -0.2:
		return model.RecommendConsiderSelling
	default:
		return model.RecommendHold
	}
}
