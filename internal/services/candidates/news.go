package candidates

import (
	"context"
	"time"

	"github.com/bobmcallan/daybrief/internal/common"
	"github.com/bobmcallan/daybrief/internal/interfaces"
	"github.com/bobmcallan/daybrief/internal/models"
)

// NewsSource produces candidates from the most recent market-wide news
// feed, keeping tickers referenced by earnings-keyword headlines. Each
// ticker keeps the first headline it was seen under.
type NewsSource struct {
	market interfaces.MarketDataClient
	limit  int
	logger *common.Logger
}

// NewNewsSource creates a new news-filtered candidate source
func NewNewsSource(market interfaces.MarketDataClient, limit int, logger *common.Logger) *NewsSource {
	if limit <= 0 {
		limit = 50
	}
	return &NewsSource{
		market: market,
		limit:  limit,
		logger: logger,
	}
}

// Mode returns the source's configuration name
func (s *NewsSource) Mode() string { return common.ModeNews }

// Candidates fetches the recent market news feed and collects tickers
// referenced by matching items. A feed failure yields an empty set and
// the error.
func (s *NewsSource) Candidates(ctx context.Context, _ time.Time) ([]models.Candidate, error) {
	items, err := s.market.ListMarketNews(ctx, s.limit)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var cands []models.Candidate
	for _, item := range items {
		if !LooksLikeEarnings(item.Title) {
			continue
		}
		for _, ticker := range item.Tickers {
			if _, dup := seen[ticker]; dup {
				continue
			}
			seen[ticker] = struct{}{}
			cands = append(cands, models.Candidate{Ticker: ticker, Headline: item.Title})
		}
	}

	s.logger.Info().
		Int("news_items", len(items)).
		Int("candidates", len(cands)).
		Msg("News source matched earnings headlines")

	return cands, nil
}

// Ensure NewsSource implements CandidateSource
var _ interfaces.CandidateSource = (*NewsSource)(nil)
