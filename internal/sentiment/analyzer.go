package sentiment

import (
	"github.com/jonreiter/govader"
	"github.com/montanaflynn/stats"

	"PortfolioPulse/internal/model"
)

// Classification thresholds on the averaged compound score.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Analyzer scores headline sentiment with the VADER lexicon.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

// NewAnalyzer creates an Analyzer with the default VADER lexicon.
func NewAnalyzer() *Analyzer {
	return &Analyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

// Score computes the mean compound score across a ticker's headlines.
// An empty headline list is a defined condition and yields Neutral/0.
func (a *Analyzer) Score(headlines []model.Headline) model.SentimentResult {
	if len(headlines) == 0 {
		return model.SentimentResult{Compound: 0, Label: model.SentimentNeutral}
	}

	compounds := make([]float64, len(headlines))
	for i, h := range headlines {
		compounds[i] = a.vader.PolarityScores(h.Title).Compound
	}

	mean, err := stats.Mean(compounds)
	if err != nil {
		mean = 0
	}
	mean = clamp(mean)

	return model.SentimentResult{Compound: mean, Label: Classify(mean)}
}

// Classify maps a compound score to its categorical label.
func Classify(compound float64) model.SentimentLabel {
	switch {
	case compound > positiveThreshold:
		return model.SentimentPositive
	case compound < negativeThreshold:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
