package strategy

import (
	"fmt"

	"PortfolioPulse/internal/model"
)

// Factor names as shown in reports.
const (
	FactorMomentum  = "momentum"
	FactorSentiment = "sentiment"
	FactorAnalyst   = "analyst"
)

// scoreMomentum scores the MA50 vs MA200 crossover. A nil average means
// insufficient price history and falls back to Neutral/0; exact equality
// is also Neutral rather than being left to floating-point chance.
func scoreMomentum(ma50, ma200 *float64, weight float64) (model.FactorScore, model.MomentumSignal) {
	f := model.FactorScore{Name: FactorMomentum, Weight: weight}

	if ma50 == nil || ma200 == nil {
		f.Commentary = "insufficient price history"
		return f, model.MomentumNeutral
	}

	var signal model.MomentumSignal
	switch {
	case *ma50 > *ma200:
		f.RawScore = 1
		signal = model.MomentumBullish
	case *ma50 < *ma200:
		f.RawScore = -1
		signal = model.MomentumBearish
	default:
		f.RawScore = 0
		signal = model.MomentumNeutral
	}

	f.Weighted = f.RawScore * weight
	f.Commentary = fmt.Sprintf("MA50=%.2f MA200=%.2f", *ma50, *ma200)
	return f, signal
}

// scoreSentiment feeds the raw averaged compound value into the
// composite, clamped to [-1, 1]. The categorical label is display only.
func scoreSentiment(compound float64, weight float64) model.FactorScore {
	if compound > 1 {
		compound = 1
	}
	if compound < -1 {
		compound = -1
	}
	return model.FactorScore{
		Name:       FactorSentiment,
		RawScore:   compound,
		Weight:     weight,
		Weighted:   compound * weight,
		Commentary: fmt.Sprintf("avg compound %+.3f", compound),
	}
}

// scoreAnalyst maps the consensus rating to a sub-score. Unknown is an
// explicit fallback treated identically to Hold.
func scoreAnalyst(consensus model.AnalystConsensus, weight float64) model.FactorScore {
	var raw float64
	switch consensus {
	case model.ConsensusBuy:
		raw = 1
	case model.ConsensusSell:
		raw = -1
	default: // Hold and Unknown
		raw = 0
	}
	return model.FactorScore{
		Name:       FactorAnalyst,
		RawScore:   raw,
		Weight:     weight,
		Weighted:   raw * weight,
		Commentary: fmt.Sprintf("consensus %s", consensus),
	}
}
