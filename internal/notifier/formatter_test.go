package notifier

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"PortfolioPulse/internal/model"
	"PortfolioPulse/internal/portfolio"
)

func fptr(v float64) *float64 { return &v }

func TestFormatPortfolioReport_FailedRowIsDistinct(t *testing.T) {
	results := []model.StockResult{
		{
			Ticker:         "AAPL",
			CurrentPrice:   190.5,
			MA50:           fptr(185),
			MA200:          fptr(170),
			Momentum:       model.MomentumBullish,
			Sentiment:      model.SentimentResult{Compound: 0.12, Label: model.SentimentPositive},
			Consensus:      model.ConsensusBuy,
			CompositeScore: 0.736,
			Recommendation: model.RecommendBuyMore,
			YTDReturn:      fptr(8.4),
		},
		{
			Ticker:         "DEAD",
			Momentum:       model.MomentumNeutral,
			Consensus:      model.ConsensusUnknown,
			Recommendation: model.RecommendHold,
			Failed:         true,
			FailReason:     "fetch price series: timeout",
		},
	}
	summary := portfolio.Summarize(results, nil)

	report := FormatPortfolioReport(results, summary, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))

	assert.Contains(t, report, "AAPL")
	assert.Contains(t, report, "Buy More")
	assert.Contains(t, report, "ANALYSIS FAILED: fetch price series: timeout")
	// the failed row must not look like a scored Hold row
	for _, line := range strings.Split(report, "\n") {
		if strings.HasPrefix(line, "DEAD") {
			assert.NotContains(t, line, "Hold")
		}
	}
	assert.Contains(t, report, "(1 failed)")
}

func TestSplitMessage(t *testing.T) {
	assert.Equal(t, []string{"short"}, splitMessage("short", 4096))

	long := strings.Repeat("row of table data\n", 40)
	chunks := splitMessage(long, 100)
	assert.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 100)
		// chunks break on row boundaries, never mid-line
		assert.True(t, strings.HasSuffix(c, "data") || strings.HasSuffix(c, "data\n"), "chunk %q", c)
	}
	assert.Equal(t, strings.ReplaceAll(long, "\n", ""), strings.ReplaceAll(strings.Join(chunks, ""), "\n", ""))

	// text with no newline at all still gets hard-split
	chunks = splitMessage(strings.Repeat("x", 250), 100)
	assert.Len(t, chunks, 3)
}

func TestFormatSummary_MissingDataRendersNA(t *testing.T) {
	out := FormatSummary(model.PortfolioSummary{TotalStocks: 0})

	assert.Contains(t, out, "avg sentiment:   n/a")
	assert.Contains(t, out, "portfolio YTD:   n/a")
	assert.Contains(t, out, "benchmark YTD:   n/a")
	assert.NotContains(t, out, "outperformance")
}
