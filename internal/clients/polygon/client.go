// Package polygon provides a client for the Polygon.io REST API
package polygon

import (
	"context"
	"fmt"
	"net/http"
	"time"

	polygonrest "github.com/polygon-io/client-go/rest"
	rmodels "github.com/polygon-io/client-go/rest/models"
	"golang.org/x/time/rate"

	"github.com/bobmcallan/daybrief/internal/common"
	"github.com/bobmcallan/daybrief/internal/interfaces"
	"github.com/bobmcallan/daybrief/internal/models"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second
)

// Client implements the MarketDataClient interface over the official
// Polygon REST client.
type Client struct {
	rest    *polygonrest.Client
	timeout time.Duration
	logger  *common.Logger
	limiter *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		if requestsPerSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
		}
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// NewClient creates a new Polygon client
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		timeout: DefaultTimeout,
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.rest = polygonrest.NewWithClient(apiKey, &http.Client{Timeout: c.timeout})

	return c
}

// dayBounds returns the UTC start and end instants of a calendar date.
func dayBounds(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.Add(24*time.Hour - time.Millisecond)
}

// GetDailyBar retrieves a single daily aggregate bar for a ticker.
// Returns (nil, nil) when the provider has no bar for that date.
func (c *Client) GetDailyBar(ctx context.Context, ticker string, date time.Time) (*models.Bar, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	from, to := dayBounds(date)
	params := rmodels.ListAggsParams{
		Ticker:     ticker,
		Multiplier: 1,
		Timespan:   rmodels.Day,
		From:       rmodels.Millis(from),
		To:         rmodels.Millis(to),
	}.WithOrder(rmodels.Asc).WithLimit(1).WithAdjusted(true)

	c.logger.Debug().Str("ticker", ticker).Str("date", date.Format("2006-01-02")).Msg("Polygon daily bar request")

	iter := c.rest.ListAggs(ctx, params)
	for iter.Next() {
		a := iter.Item()
		return &models.Bar{
			Ticker: ticker,
			Date:   time.Time(a.Timestamp),
			Open:   a.Open,
			High:   a.High,
			Low:    a.Low,
			Close:  a.Close,
			Volume: a.Volume,
		}, nil
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("daily bar %s: %w", ticker, err)
	}

	return nil, nil
}

// GetGroupedDaily retrieves the daily bars for every US stock on a date
// in a single grouped call.
func (c *Client) GetGroupedDaily(ctx context.Context, date time.Time) ([]models.Bar, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := rmodels.GetGroupedDailyAggsParams{
		Locale:     rmodels.US,
		MarketType: rmodels.Stocks,
		Date:       rmodels.Date(date),
	}.WithAdjusted(true)

	c.logger.Debug().Str("date", date.Format("2006-01-02")).Msg("Polygon grouped daily request")

	resp, err := c.rest.GetGroupedDailyAggs(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("grouped daily: %w", err)
	}

	bars := make([]models.Bar, 0, len(resp.Results))
	for _, a := range resp.Results {
		bars = append(bars, models.Bar{
			Ticker: a.Ticker,
			Date:   time.Time(a.Timestamp),
			Open:   a.Open,
			High:   a.High,
			Low:    a.Low,
			Close:  a.Close,
			Volume: a.Volume,
		})
	}

	c.logger.Debug().Int("bars", len(bars)).Msg("Polygon grouped daily returned results")

	return bars, nil
}

// GetTickerDetails retrieves reference details for a ticker
func (c *Client) GetTickerDetails(ctx context.Context, ticker string) (*models.TickerDetails, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	resp, err := c.rest.GetTickerDetails(ctx, &rmodels.GetTickerDetailsParams{Ticker: ticker})
	if err != nil {
		return nil, fmt.Errorf("ticker details %s: %w", ticker, err)
	}

	return &models.TickerDetails{
		Ticker: ticker,
		Name:   resp.Results.Name,
	}, nil
}

// ListTickerNews retrieves the most recent news items for a ticker,
// newest first.
func (c *Client) ListTickerNews(ctx context.Context, ticker string, limit int) ([]*models.NewsItem, error) {
	params := rmodels.ListTickerNewsParams{}.
		WithTicker(rmodels.EQ, ticker).
		WithSort(rmodels.PublishedUTC).
		WithOrder(rmodels.Desc).
		WithLimit(limit)

	return c.listNews(ctx, params, limit)
}

// ListMarketNews retrieves the most recent market-wide news items,
// newest first.
func (c *Client) ListMarketNews(ctx context.Context, limit int) ([]*models.NewsItem, error) {
	params := rmodels.ListTickerNewsParams{}.
		WithSort(rmodels.PublishedUTC).
		WithOrder(rmodels.Desc).
		WithLimit(limit)

	return c.listNews(ctx, params, limit)
}

func (c *Client) listNews(ctx context.Context, params *rmodels.ListTickerNewsParams, limit int) ([]*models.NewsItem, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	news := make([]*models.NewsItem, 0, limit)
	iter := c.rest.ListTickerNews(ctx, params)
	for iter.Next() {
		item := iter.Item()
		news = append(news, &models.NewsItem{
			Title:       item.Title,
			Tickers:     item.Tickers,
			URL:         item.ArticleURL,
			Source:      item.Publisher.Name,
			PublishedAt: time.Time(item.PublishedUTC),
		})
		// The iterator pages past the requested limit; stop at limit.
		if len(news) >= limit {
			break
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("news: %w", err)
	}

	return news, nil
}

// Ensure Client implements MarketDataClient
var _ interfaces.MarketDataClient = (*Client)(nil)
