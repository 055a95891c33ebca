// Package interfaces defines service contracts for Daybrief
package interfaces

import (
	"context"
	"time"

	"github.com/bobmcallan/daybrief/internal/models"
)

// MarketDataClient provides access to the upstream market data provider
type MarketDataClient interface {
	// GetDailyBar retrieves the single daily bar for a ticker on a date.
	// A nil bar with a nil error means no bar exists for that date.
	GetDailyBar(ctx context.Context, ticker string, date time.Time) (*models.Bar, error)

	// GetGroupedDaily retrieves the full-market daily bars for a date in one call
	GetGroupedDaily(ctx context.Context, date time.Time) ([]models.Bar, error)

	// GetTickerDetails retrieves reference details (display name) for a ticker
	GetTickerDetails(ctx context.Context, ticker string) (*models.TickerDetails, error)

	// ListTickerNews retrieves the most recent news for a ticker, newest first
	ListTickerNews(ctx context.Context, ticker string, limit int) ([]*models.NewsItem, error)

	// ListMarketNews retrieves the most recent market-wide news, newest first
	ListMarketNews(ctx context.Context, limit int) ([]*models.NewsItem, error)
}

// ConstituentsClient provides index membership lists
type ConstituentsClient interface {
	// ListConstituents retrieves normalized ticker symbols for the index
	ListConstituents(ctx context.Context) ([]string, error)
}
