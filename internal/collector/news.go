package collector

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mmcdole/gofeed"

	"PortfolioPulse/internal/model"
)

const googleNewsURL = "https://news.google.com/rss/search?q=%s+stock&hl=en-US&gl=US&ceid=US:en"

// FetchHeadlines pulls recent headlines for the ticker from the Google
// News RSS feed. An empty feed is not an error.
func (f *YahooFetcher) FetchHeadlines(ctx context.Context, ticker string, limit int) ([]model.Headline, error) {
	parser := gofeed.NewParser()
	parser.Client = f.Client

	feed, err := parser.ParseURLWithContext(fmt.Sprintf(googleNewsURL, url.QueryEscape(ticker)), ctx)
	if err != nil {
		return nil, fmt.Errorf("google news fetch: %w", err)
	}

	headlines := make([]model.Headline, 0, limit)
	for _, item := range feed.Items {
		if len(headlines) >= limit {
			break
		}
		h := model.Headline{Title: item.Title, Link: item.Link}
		if item.PublishedParsed != nil {
			h.PublishedAt = *item.PublishedParsed
		}
		headlines = append(headlines, h)
	}
	return headlines, nil
}
