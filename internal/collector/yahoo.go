package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"PortfolioPulse/internal/model"
)

// YahooFetcher implements Fetcher using the Yahoo Finance public chart
// API for prices and the quote analysis page for analyst ratings.
type YahooFetcher struct {
	Client *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []interface{} `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// FetchPriceSeries pulls two years of daily closes, enough history for
// the 200-day average and a start-of-year close.
func (f *YahooFetcher) FetchPriceSeries(ctx context.Context, ticker string) (*model.PriceSeries, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=2y",
		url.PathEscape(ticker))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned for %s", ticker)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no quote data for %s", ticker)
	}
	quote := result.Indicators.Quote[0]
	points := make([]model.ClosePoint, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) {
			break
		}
		c := toFloat(quote.Close[i])
		if c == 0 {
			continue // skip null bars (holidays etc.)
		}
		points = append(points, model.ClosePoint{Date: time.Unix(ts, 0), Close: c})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("yahoo: only null bars for %s", ticker)
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })

	return &model.PriceSeries{
		Ticker:       ticker,
		Points:       points,
		CurrentPrice: points[len(points)-1].Close,
		FetchedAt:    time.Now(),
	}, nil
}

// FetchAnalystConsensus scrapes the Yahoo Finance analysis page and
// tallies the individual rating cells into a consensus. Unknown is the
// fallback whenever nothing parseable is found.
func (f *YahooFetcher) FetchAnalystConsensus(ctx context.Context, ticker string) (model.AnalystConsensus, error) {
	u := fmt.Sprintf("https://finance.yahoo.com/quote/%s/analysis", url.PathEscape(ticker))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return model.ConsensusUnknown, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := f.Client.Do(req)
	if err != nil {
		return model.ConsensusUnknown, fmt.Errorf("yahoo analysis fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.ConsensusUnknown, fmt.Errorf("yahoo analysis: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return model.ConsensusUnknown, fmt.Errorf("yahoo analysis parse: %w", err)
	}

	var votes []float64
	doc.Find("td").Each(func(_ int, s *goquery.Selection) {
		if v, ok := ratingValue(s.Text()); ok {
			votes = append(votes, v)
		}
	})

	return consensusFromVotes(votes), nil
}

// ratingValue maps a single rating cell to a numeric vote.
func ratingValue(text string) (float64, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "buy", "strong buy", "overweight", "outperform":
		return 1, true
	case "hold", "neutral", "market perform":
		return 0, true
	case "sell", "strong sell", "underweight", "underperform":
		return -1, true
	default:
		return 0, false
	}
}

// consensusFromVotes averages individual votes into a consensus label.
func consensusFromVotes(votes []float64) model.AnalystConsensus {
	if len(votes) == 0 {
		return model.ConsensusUnknown
	}
	sum := 0.0
	for _, v := range votes {
		sum += v
	}
	avg := sum / float64(len(votes))
	switch {
	case avg > 0.3:
		return model.ConsensusBuy
	case avg < -0.3:
		return model.ConsensusSell
	default:
		return model.ConsensusHold
	}
}

// ParseConsensus maps a free-text consensus label to the enum. Used
// when the rating arrives as a single scraped string.
func ParseConsensus(text string) model.AnalystConsensus {
	v, ok := ratingValue(text)
	if !ok {
		return model.ConsensusUnknown
	}
	switch {
	case v > 0:
		return model.ConsensusBuy
	case v < 0:
		return model.ConsensusSell
	default:
		return model.ConsensusHold
	}
}
