// Package models defines data structures for Daybrief
package models

import (
	"time"
)

// Bar represents a single day's price data for a ticker
type Bar struct {
	Ticker string    `json:"ticker,omitempty"`
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// ChangePct returns the open-to-close percentage change for the bar,
// or nil when the bar cannot produce a valid change (open or close
// missing or non-positive).
func (b *Bar) ChangePct() *float64 {
	if b == nil || b.Open <= 0 || b.Close <= 0 {
		return nil
	}
	pct := (b.Close - b.Open) / b.Open * 100.0
	return &pct
}

// TickerDetails holds reference data for a ticker
type TickerDetails struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
}

// NewsItem represents a single news article
type NewsItem struct {
	Title       string    `json:"title"`
	Tickers     []string  `json:"tickers,omitempty"`
	URL         string    `json:"url,omitempty"`
	Source      string    `json:"source,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}
