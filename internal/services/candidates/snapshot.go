package candidates

import (
	"context"
	"time"

	"github.com/bobmcallan/daybrief/internal/common"
	"github.com/bobmcallan/daybrief/internal/interfaces"
	"github.com/bobmcallan/daybrief/internal/models"
)

// SnapshotSource produces candidates from a single market-wide grouped
// daily call. Every ticker with a valid open-to-close change becomes a
// candidate carrying its precomputed change; bars that cannot produce a
// change are excluded here. No keyword filtering in this mode.
type SnapshotSource struct {
	market interfaces.MarketDataClient
	logger *common.Logger
}

// NewSnapshotSource creates a new market-wide snapshot candidate source
func NewSnapshotSource(market interfaces.MarketDataClient, logger *common.Logger) *SnapshotSource {
	return &SnapshotSource{
		market: market,
		logger: logger,
	}
}

// Mode returns the source's configuration name
func (s *SnapshotSource) Mode() string { return common.ModeSnapshot }

// Candidates fetches the full-market grouped daily bars for the run
// date. A bulk fetch failure yields an empty set and the error.
func (s *SnapshotSource) Candidates(ctx context.Context, date time.Time) ([]models.Candidate, error) {
	bars, err := s.market.GetGroupedDaily(ctx, date)
	if err != nil {
		return nil, err
	}

	cands := make([]models.Candidate, 0, len(bars))
	for i := range bars {
		change := bars[i].ChangePct()
		if change == nil {
			continue
		}
		cands = append(cands, models.Candidate{
			Ticker: bars[i].Ticker,
			Change: change,
		})
	}

	s.logger.Info().
		Int("bars", len(bars)).
		Int("candidates", len(cands)).
		Msg("Snapshot source computed market-wide changes")

	return cands, nil
}

// Ensure SnapshotSource implements CandidateSource
var _ interfaces.CandidateSource = (*SnapshotSource)(nil)
