package model

import "time"

// ClosePoint is a single (date, closing price) observation.
type ClosePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries holds a ticker's trailing daily closes, ascending by date.
type PriceSeries struct {
	Ticker       string
	Points       []ClosePoint
	CurrentPrice float64
	FetchedAt    time.Time
}

// Closes returns the closing prices in date order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// Headline is one news item for a ticker. PublishedAt is informational
// only and plays no part in scoring.
type Headline struct {
	Title       string
	Link        string
	PublishedAt time.Time
}
