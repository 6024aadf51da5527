package strategy

import (
	"testing"

	"PortfolioPulse/internal/model"
)

func mustEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultWeights)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func ptr(v float64) *float64 { return &v }

func TestEvaluate_MomentumSignal(t *testing.T) {
	e := mustEngine(t)

	tests := []struct {
		name    string
		ma50    *float64
		ma200   *float64
		signal  model.MomentumSignal
		raw     float64
	}{
		{"golden cross", ptr(120), ptr(100), model.MomentumBullish, 1},
		{"death cross", ptr(90), ptr(100), model.MomentumBearish, -1},
		{"exact equality", ptr(100), ptr(100), model.MomentumNeutral, 0},
		{"missing ma50", nil, ptr(100), model.MomentumNeutral, 0},
		{"missing ma200", ptr(100), nil, model.MomentumNeutral, 0},
		{"both missing", nil, nil, model.MomentumNeutral, 0},
	}
	for _, tt := range tests {
		a := e.Evaluate(Input{MA50: tt.ma50, MA200: tt.ma200, Consensus: model.ConsensusUnknown})
		if a.Momentum != tt.signal {
			t.Errorf("%s: momentum = %s, want %s", tt.name, a.Momentum, tt.signal)
		}
		if a.Factors[0].RawScore != tt.raw {
			t.Errorf("%s: momentum raw score = %.1f, want %.1f", tt.name, a.Factors[0].RawScore, tt.raw)
		}
	}
}

func TestEvaluate_AnalystSubScore(t *testing.T) {
	e := mustEngine(t)

	tests := []struct {
		consensus model.AnalystConsensus
		raw       float64
	}{
		{model.ConsensusBuy, 1},
		{model.ConsensusHold, 0},
		{model.ConsensusSell, -1},
		{model.ConsensusUnknown, 0}, // fallback, treated like Hold
	}
	for _, tt := range tests {
		a := e.Evaluate(Input{Consensus: tt.consensus})
		if a.Factors[2].RawScore != tt.raw {
			t.Errorf("%s: analyst raw score = %.1f, want %.1f", tt.consensus, a.Factors[2].RawScore, tt.raw)
		}
	}
}

func TestEvaluate_Scenarios(t *testing.T) {
	e := mustEngine(t)

	// Bullish across the board: 0.4*1 + 0.3*0.2 + 0.3*1 = 0.7
	a := e.Evaluate(Input{
		MA50:      ptr(120),
		MA200:     ptr(100),
		Sentiment: model.SentimentResult{Compound: 0.2, Label: model.SentimentPositive},
		Consensus: model.ConsensusBuy,
	})
	if !almost(a.Composite, 0.7) {
		t.Errorf("composite = %.4f, want 0.7", a.Composite)
	}
	if a.Recommendation != model.RecommendBuyMore {
		t.Errorf("recommendation = %s, want %s", a.Recommendation, model.RecommendBuyMore)
	}

	// Bearish across the board: -0.4 - 0.03 - 0.3 = -0.73
	a = e.Evaluate(Input{
		MA50:      ptr(90),
		MA200:     ptr(100),
		Sentiment: model.SentimentResult{Compound: -0.1, Label: model.SentimentNegative},
		Consensus: model.ConsensusSell,
	})
	if !almost(a.Composite, -0.73) {
		t.Errorf("composite = %.4f, want -0.73", a.Composite)
	}
	if a.Recommendation != model.RecommendConsiderSelling {
		t.Errorf("recommendation = %s, want %s", a.Recommendation, model.RecommendConsiderSelling)
	}

	// Everything missing: composite 0, Hold
	a = e.Evaluate(Input{
		Sentiment: model.SentimentResult{Compound: 0, Label: model.SentimentNeutral},
		Consensus: model.ConsensusUnknown,
	})
	if a.Composite != 0 {
		t.Errorf("composite = %.4f, want 0", a.Composite)
	}
	if a.Recommendation != model.RecommendHold {
		t.Errorf("recommendation = %s, want %s", a.Recommendation, model.RecommendHold)
	}
}

func TestMapRecommendation_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  model.Recommendation
	}{
		{0.7, model.RecommendBuyMore},
		{0.51, model.RecommendBuyMore},
		{0.5, model.RecommendHold}, // strict >
		{0.0, model.RecommendHold},
		{-0.2, model.RecommendHold}, // strict <
		{-0.21, model.RecommendConsiderSelling},
		{-0.73, model.RecommendConsiderSelling},
		{-1.0, model.RecommendConsiderSelling},
	}
	for _, tt := range tests {
		if got := mapRecommendation(tt.score); got != tt.want {
			t.Errorf("score %.2f: got %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestEvaluate_CompositeBounded(t *testing.T) {
	e := mustEngine(t)

	mas := []struct{ ma50, ma200 *float64 }{
		{ptr(120), ptr(100)},
		{ptr(90), ptr(100)},
		{nil, nil},
	}
	consensuses := []model.AnalystConsensus{
		model.ConsensusBuy, model.ConsensusHold, model.ConsensusSell, model.ConsensusUnknown,
	}
	compounds := []float64{-1, -0.5, 0, 0.5, 1, 2, -2} // out-of-range values get clamped

	for _, m := range mas {
		for _, c := range consensuses {
			for _, s := range compounds {
				a := e.Evaluate(Input{
					MA50:      m.ma50,
					MA200:     m.ma200,
					Sentiment: model.SentimentResult{Compound: s},
					Consensus: c,
				})
				if a.Composite < -1 || a.Composite > 1 {
					t.Fatalf("composite %.4f out of [-1, 1] (compound=%.1f consensus=%s)", a.Composite, s, c)
				}
			}
		}
	}
}

func TestWeights_Validate(t *testing.T) {
	if err := DefaultWeights.Validate(); err != nil {
		t.Errorf("default weights should validate: %v", err)
	}
	if err := (Weights{0.5, 0.3, 0.3}).Validate(); err == nil {
		t.Error("expected error for weights summing to 1.1")
	}
	if err := (Weights{0.8, 0.3, -0.1}).Validate(); err == nil {
		t.Error("expected error for negative weight")
	}
	if _, err := NewEngine(Weights{}); err == nil {
		t.Error("expected error for zero weights")
	}
}

func almost(got, want float64) bool {
	diff := got - want
	return diff < 1e-9 && diff > -1e-9
}
