package collector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PortfolioPulse/internal/model"
)

func TestCollect_PriceFailureIsFatalForTicker(t *testing.T) {
	mock := NewMockFetcher()
	mock.PriceErr["XXX"] = errors.New("dns failure")

	col := NewCollector(mock, 5)
	_, err := col.Collect(context.Background(), "XXX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch price series")
}

func TestCollect_SecondarySourcesDegrade(t *testing.T) {
	mock := NewMockFetcher()
	mock.Series["AAA"] = GenerateMockSeries("AAA", 100, 260)
	mock.HeadlineErr["AAA"] = errors.New("rss down")
	mock.ConsensusErr["AAA"] = errors.New("scrape blocked")

	col := NewCollector(mock, 5)
	snap, err := col.Collect(context.Background(), "AAA")
	require.NoError(t, err)
	assert.Empty(t, snap.Headlines)
	assert.Equal(t, model.ConsensusUnknown, snap.Consensus)
	assert.NotNil(t, snap.Prices)
}

func TestCollect_HeadlineLimit(t *testing.T) {
	mock := NewMockFetcher()
	mock.Series["AAA"] = GenerateMockSeries("AAA", 100, 260)
	mock.Headlines["AAA"] = []model.Headline{
		{Title: "one"}, {Title: "two"}, {Title: "three"}, {Title: "four"},
	}

	col := NewCollector(mock, 2)
	snap, err := col.Collect(context.Background(), "AAA")
	require.NoError(t, err)
	assert.Len(t, snap.Headlines, 2)
}

func TestConsensusFromVotes(t *testing.T) {
	tests := []struct {
		name  string
		votes []float64
		want  model.AnalystConsensus
	}{
		{"no votes", nil, model.ConsensusUnknown},
		{"strong buy side", []float64{1, 1, 1, 0}, model.ConsensusBuy},
		{"mixed", []float64{1, -1, 0, 0}, model.ConsensusHold},
		{"strong sell side", []float64{-1, -1, 0}, model.ConsensusSell},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, consensusFromVotes(tt.votes), tt.name)
	}
}

func TestParseConsensus(t *testing.T) {
	tests := []struct {
		text string
		want model.AnalystConsensus
	}{
		{"Buy", model.ConsensusBuy},
		{"overweight", model.ConsensusBuy},
		{" Outperform ", model.ConsensusBuy},
		{"Hold", model.ConsensusHold},
		{"NEUTRAL", model.ConsensusHold},
		{"Sell", model.ConsensusSell},
		{"underperform", model.ConsensusSell},
		{"", model.ConsensusUnknown},
		{"12.4", model.ConsensusUnknown},
		{"garbage text", model.ConsensusUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseConsensus(tt.text), "text %q", tt.text)
	}
}
