package collector

import (
	"context"

	"PortfolioPulse/internal/model"
)

// Fetcher defines the interface for fetching per-ticker market data.
// Implementations return errors only for genuine fetch failures;
// partially missing data (short history, no headlines) comes back as
// empty values.
type Fetcher interface {
	FetchPriceSeries(ctx context.Context, ticker string) (*model.PriceSeries, error)
	FetchHeadlines(ctx context.Context, ticker string, limit int) ([]model.Headline, error)
	FetchAnalystConsensus(ctx context.Context, ticker string) (model.AnalystConsensus, error)
	Name() string
}
