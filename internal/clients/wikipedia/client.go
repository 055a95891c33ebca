// Package wikipedia provides the S&P 500 index constituents source
package wikipedia

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/bobmcallan/daybrief/internal/common"
	"github.com/bobmcallan/daybrief/internal/interfaces"
)

const (
	DefaultURL     = "https://en.wikipedia.org/wiki/List_of_S%26P_500_companies"
	DefaultTimeout = 30 * time.Second
)

// Client scrapes the index constituents table from Wikipedia
type Client struct {
	url        string
	httpClient *http.Client
	logger     *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithURL sets the page URL
func WithURL(url string) ClientOption {
	return func(c *Client) {
		if url != "" {
			c.url = url
		}
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new constituents client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		url: DefaultURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ListConstituents fetches and parses the constituents table, returning
// normalized, deduplicated ticker symbols in page order.
func (c *Client) ListConstituents(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "daybrief/"+common.GetVersion())

	c.logger.Debug().Str("url", c.url).Msg("Fetching index constituents")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch constituents page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("constituents page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse constituents page: %w", err)
	}

	tickers := parseConstituents(doc)
	if len(tickers) == 0 {
		return nil, fmt.Errorf("no constituents found on page")
	}

	c.logger.Debug().Int("tickers", len(tickers)).Msg("Parsed index constituents")

	return tickers, nil
}

// parseConstituents extracts ticker symbols from the first column of the
// constituents table. The page carries the table under id "constituents";
// the first wikitable is used as a fallback.
func parseConstituents(doc *goquery.Document) []string {
	table := doc.Find("table#constituents").First()
	if table.Length() == 0 {
		table = doc.Find("table.wikitable").First()
	}

	seen := make(map[string]struct{})
	var tickers []string

	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cell := row.Find("td").First()
		if cell.Length() == 0 {
			return // header row
		}
		symbol := NormalizeSymbol(cell.Text())
		if symbol == "" {
			return
		}
		if _, dup := seen[symbol]; dup {
			return
		}
		seen[symbol] = struct{}{}
		tickers = append(tickers, symbol)
	})

	return tickers
}

// NormalizeSymbol uppercases a raw symbol and converts class-share dots
// to the dashed form the market data provider expects (BRK.B -> BRK-B).
func NormalizeSymbol(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	return strings.ReplaceAll(s, ".", "-")
}

// Ensure Client implements ConstituentsClient
var _ interfaces.ConstituentsClient = (*Client)(nil)
