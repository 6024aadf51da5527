package notifier

import (
	"fmt"
	"strings"
	"time"

	"PortfolioPulse/internal/model"
	"PortfolioPulse/internal/sentiment"
)

// FormatPortfolioReport renders one analysis run as a plain-text report:
// a per-ticker table followed by the portfolio summary. Failed tickers
// get an explicit FAILED row so they are never mistaken for a quiet Hold.
func FormatPortfolioReport(results []model.StockResult, summary model.PortfolioSummary, at time.Time) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("PortfolioPulse report | %s\n\n", at.Format("2006-01-02 15:04")))

	b.WriteString(fmt.Sprintf("%-8s %10s %7s %10s %10s %6s %-8s %-9s %-8s %7s %-17s %8s\n",
		"TICKER", "PRICE", "DAY%", "MA50", "MA200", "RSI", "MOMENTUM", "SENTIMENT", "ANALYST", "SCORE", "RECOMMENDATION", "YTD%"))
	b.WriteString(strings.Repeat("-", 120) + "\n")

	for _, r := range results {
		if r.Failed {
			b.WriteString(fmt.Sprintf("%-8s ** ANALYSIS FAILED: %s\n", r.Ticker, r.FailReason))
			continue
		}
		b.WriteString(fmt.Sprintf("%-8s %10.2f %7s %10s %10s %6s %-8s %-9s %-8s %+7.3f %-17s %8s\n",
			r.Ticker,
			r.CurrentPrice,
			fmtOpt(r.DayChange, "%+.2f"),
			fmtOpt(r.MA50, "%.2f"),
			fmtOpt(r.MA200, "%.2f"),
			fmtOpt(r.RSI, "%.0f"),
			r.Momentum,
			r.Sentiment.Label,
			r.Consensus,
			r.CompositeScore,
			r.Recommendation,
			fmtOpt(r.YTDReturn, "%+.2f"),
		))
	}

	b.WriteString("\n")
	b.WriteString(FormatSummary(summary))
	return b.String()
}

// FormatSummary renders the portfolio-level roll-up.
func FormatSummary(s model.PortfolioSummary) string {
	var b strings.Builder

	b.WriteString("Portfolio summary\n")
	b.WriteString(fmt.Sprintf("  stocks analyzed: %d", s.TotalStocks))
	if s.FailedStocks > 0 {
		b.WriteString(fmt.Sprintf(" (%d failed)", s.FailedStocks))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  recommendations: %d buy more / %d hold / %d consider selling\n",
		s.BuyMoreCount, s.HoldCount, s.ConsiderSellingCount))
	b.WriteString(fmt.Sprintf("  momentum:        %d bullish / %d neutral / %d bearish\n",
		s.BullishCount, s.NeutralMomentumCount, s.BearishCount))
	b.WriteString(fmt.Sprintf("  analyst ratings: %d buy / %d hold / %d sell / %d unknown\n",
		s.ConsensusBuyCount, s.ConsensusHoldCount, s.ConsensusSellCount, s.ConsensusUnknownCount))

	if s.AvgSentiment != nil {
		b.WriteString(fmt.Sprintf("  avg sentiment:   %+.3f (%s)\n", *s.AvgSentiment,
			strings.ToLower(string(sentiment.Classify(*s.AvgSentiment)))))
	} else {
		b.WriteString("  avg sentiment:   n/a\n")
	}

	b.WriteString(fmt.Sprintf("  portfolio YTD:   %s\n", fmtOpt(s.PortfolioReturn, "%+.2f%%")))
	b.WriteString(fmt.Sprintf("  benchmark YTD:   %s\n", fmtOpt(s.BenchmarkReturn, "%+.2f%%")))
	if s.Outperformance != nil {
		b.WriteString(fmt.Sprintf("  outperformance:  %+.2f%%\n", *s.Outperformance))
	}

	return b.String()
}

func fmtOpt(v *float64, format string) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf(format, *v)
}
