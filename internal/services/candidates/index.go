package candidates

import (
	"context"
	"time"

	"github.com/bobmcallan/daybrief/internal/common"
	"github.com/bobmcallan/daybrief/internal/interfaces"
	"github.com/bobmcallan/daybrief/internal/models"
)

// IndexSource produces candidates from a static index membership list,
// keeping only tickers whose recent news contains an earnings headline.
// The matching headline is attached to the candidate.
type IndexSource struct {
	constituents  interfaces.ConstituentsClient
	market        interfaces.MarketDataClient
	newsPerTicker int
	logger        *common.Logger
}

// NewIndexSource creates a new index-membership candidate source
func NewIndexSource(
	constituents interfaces.ConstituentsClient,
	market interfaces.MarketDataClient,
	newsPerTicker int,
	logger *common.Logger,
) *IndexSource {
	if newsPerTicker <= 0 {
		newsPerTicker = 2
	}
	return &IndexSource{
		constituents:  constituents,
		market:        market,
		newsPerTicker: newsPerTicker,
		logger:        logger,
	}
}

// Mode returns the source's configuration name
func (s *IndexSource) Mode() string { return common.ModeIndex }

// Candidates lists the index constituents and keeps those with a recent
// earnings-related headline. A constituents fetch failure yields an
// empty set and the error; per-ticker news failures skip that ticker.
func (s *IndexSource) Candidates(ctx context.Context, _ time.Time) ([]models.Candidate, error) {
	tickers, err := s.constituents.ListConstituents(ctx)
	if err != nil {
		return nil, err
	}

	var cands []models.Candidate
	for _, ticker := range tickers {
		headline := s.earningsHeadline(ctx, ticker)
		if headline == "" {
			continue
		}
		cands = append(cands, models.Candidate{Ticker: ticker, Headline: headline})
	}

	s.logger.Info().
		Int("constituents", len(tickers)).
		Int("candidates", len(cands)).
		Msg("Index source matched earnings headlines")

	return cands, nil
}

// earningsHeadline returns the most recent earnings-keyword headline
// for a ticker, or "" when none matches or the lookup fails.
func (s *IndexSource) earningsHeadline(ctx context.Context, ticker string) string {
	items, err := s.market.ListTickerNews(ctx, ticker, s.newsPerTicker)
	if err != nil {
		s.logger.Debug().Err(err).Str("ticker", ticker).Msg("Ticker news lookup failed")
		return ""
	}
	for _, item := range items {
		if LooksLikeEarnings(item.Title) {
			return item.Title
		}
	}
	return ""
}

// Ensure IndexSource implements CandidateSource
var _ interfaces.CandidateSource = (*IndexSource)(nil)
