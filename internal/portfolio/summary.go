package portfolio

import (
	"github.com/montanaflynn/stats"

	"PortfolioPulse/internal/model"
)

// Summarize rolls per-ticker results up into portfolio-level metrics.
// Pure aggregation: an empty input yields zero counts and nil means
// rather than a divide-by-zero. Failed tickers are counted separately
// and excluded from the category tallies and averages, since their
// fields only carry placeholder fallbacks.
func Summarize(results []model.StockResult, benchmarkReturn *float64) model.PortfolioSummary {
	summary := model.PortfolioSummary{
		TotalStocks:     len(results),
		BenchmarkReturn: benchmarkReturn,
	}

	var sentiments []float64
	var returns []float64

	for _, r := range results {
		if r.Failed {
			summary.FailedStocks++
			continue
		}

		switch r.Recommendation {
		case model.RecommendBuyMore:
			summary.BuyMoreCount++
		case model.RecommendConsiderSelling:
			summary.ConsiderSellingCount++
		default:
			summary.HoldCount++
		}

		switch r.Momentum {
		case model.MomentumBullish:
			summary.BullishCount++
		case model.MomentumBearish:
			summary.BearishCount++
		default:
			summary.NeutralMomentumCount++
		}

		switch r.Consensus {
		case model.ConsensusBuy:
			summary.ConsensusBuyCount++
		case model.ConsensusHold:
			summary.ConsensusHoldCount++
		case model.ConsensusSell:
			summary.ConsensusSellCount++
		default:
			summary.ConsensusUnknownCount++
		}

		sentiments = append(sentiments, r.Sentiment.Compound)
		if r.YTDReturn != nil {
			returns = append(returns, *r.YTDReturn)
		}
	}

	if mean, err := stats.Mean(sentiments); err == nil {
		summary.AvgSentiment = &mean
	}
	if mean, err := stats.Mean(returns); err == nil {
		summary.PortfolioReturn = &mean
	}
	if summary.PortfolioReturn != nil && summary.BenchmarkReturn != nil {
		diff := *summary.PortfolioReturn - *summary.BenchmarkReturn
		summary.Outperformance = &diff
	}

	return summary
}
