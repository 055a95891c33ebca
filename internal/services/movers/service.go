// Package movers computes report row metrics for candidate tickers
package movers

import (
	"context"
	"time"

	"github.com/bobmcallan/daybrief/internal/common"
	"github.com/bobmcallan/daybrief/internal/interfaces"
	"github.com/bobmcallan/daybrief/internal/models"
	"github.com/bobmcallan/daybrief/internal/services/candidates"
)

// Service implements MoversService
type Service struct {
	market        interfaces.MarketDataClient
	newsPerTicker int
	logger        *common.Logger
}

// NewService creates a new movers service
func NewService(market interfaces.MarketDataClient, newsPerTicker int, logger *common.Logger) *Service {
	if newsPerTicker <= 0 {
		newsPerTicker = 2
	}
	return &Service{
		market:        market,
		newsPerTicker: newsPerTicker,
		logger:        logger,
	}
}

// BuildRows computes the percentage change for each candidate and drops
// candidates without a valid change. Sources that precomputed a change
// (bulk snapshot) skip the per-ticker bar fetch. Input order is
// preserved for the selector's stable tie-break.
func (s *Service) BuildRows(ctx context.Context, cands []models.Candidate, date time.Time) []models.Row {
	rows := make([]models.Row, 0, len(cands))
	dropped := 0

	for _, cand := range cands {
		change := cand.Change
		if change == nil {
			change = s.changeFor(ctx, cand.Ticker, date)
		}
		if change == nil {
			dropped++
			continue
		}
		rows = append(rows, models.Row{
			Ticker: cand.Ticker,
			Change: change,
			Note:   cand.Headline,
		})
	}

	if dropped > 0 {
		s.logger.Debug().Int("dropped", dropped).Msg("Candidates without a valid change dropped")
	}

	return rows
}

// Enrich fills in the company name for each row and, when the source
// did not supply one, the most recent earnings headline. Both lookups
// fail soft: the ticker symbol stands in for a missing name and a
// missing headline leaves the note empty.
func (s *Service) Enrich(ctx context.Context, rows []models.Row) []models.Row {
	out := make([]models.Row, len(rows))
	for i, row := range rows {
		row.Company = s.companyName(ctx, row.Ticker)
		if row.Note == "" {
			row.Note = s.earningsHeadline(ctx, row.Ticker)
		}
		out[i] = row
	}
	return out
}

// changeFor fetches the daily bar and derives percentage change,
// returning nil on any fetch failure, a missing bar, or an unusable
// open/close.
func (s *Service) changeFor(ctx context.Context, ticker string, date time.Time) *float64 {
	bar, err := s.market.GetDailyBar(ctx, ticker, date)
	if err != nil {
		s.logger.Debug().Err(err).Str("ticker", ticker).Msg("Daily bar fetch failed")
		return nil
	}
	return bar.ChangePct()
}

// companyName fetches the display name for a ticker, falling back to
// the symbol itself.
func (s *Service) companyName(ctx context.Context, ticker string) string {
	details, err := s.market.GetTickerDetails(ctx, ticker)
	if err != nil || details == nil || details.Name == "" {
		return ticker
	}
	return details.Name
}

// earningsHeadline returns the most recent earnings-keyword headline
// for a ticker, or "" when none matches or the lookup fails.
func (s *Service) earningsHeadline(ctx context.Context, ticker string) string {
	items, err := s.market.ListTickerNews(ctx, ticker, s.newsPerTicker)
	if err != nil {
		return ""
	}
	for _, item := range items {
		if candidates.LooksLikeEarnings(item.Title) {
			return item.Title
		}
	}
	return ""
}

// Ensure Service implements MoversService
var _ interfaces.MoversService = (*Service)(nil)
