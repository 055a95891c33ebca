// Package report runs the daily report pipeline
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/bobmcallan/daybrief/internal/common"
	"github.com/bobmcallan/daybrief/internal/interfaces"
	"github.com/bobmcallan/daybrief/internal/models"
	"github.com/bobmcallan/daybrief/internal/services/movers"
)

// Options holds the selection tunables for a report run
type Options struct {
	MaxRows     int // index/news truncation
	TopEachSide int // snapshot gainers/losers count per side
}

// Service implements ReportService
type Service struct {
	source  interfaces.CandidateSource
	movers  interfaces.MoversService
	store   interfaces.ReportStore
	options Options
	logger  *common.Logger
}

// NewService creates a new report service
func NewService(
	source interfaces.CandidateSource,
	moversService interfaces.MoversService,
	store interfaces.ReportStore,
	options Options,
	logger *common.Logger,
) *Service {
	if options.MaxRows <= 0 {
		options.MaxRows = 12
	}
	if options.TopEachSide <= 0 {
		options.TopEachSide = 8
	}
	return &Service{
		source:  source,
		movers:  moversService,
		store:   store,
		options: options,
		logger:  logger,
	}
}

// Generate runs the full pipeline: source, metrics, selection,
// rendering, storage. A source failure degrades to an empty report;
// only rendering or storage failures abort the run.
func (s *Service) Generate(ctx context.Context, date time.Time) (*models.Report, error) {
	dateStr := date.Format("2006-01-02")
	mode := s.source.Mode()

	s.logger.Info().Str("date", dateStr).Str("mode", mode).Msg("Generating daily report")

	// Step 1: candidates. Failure means an empty report, not an abort.
	cands, err := s.source.Candidates(ctx, date)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Candidate source failed (continuing with empty set)")
		cands = nil
	}

	// Step 2: metrics. Invalid-change candidates are dropped here.
	rows := s.movers.BuildRows(ctx, cands, date)

	// Step 3: selection.
	if mode == common.ModeSnapshot {
		rows = movers.GainersLosers(rows, s.options.TopEachSide)
	} else {
		rows = movers.TopMovers(rows, s.options.MaxRows)
	}

	// Step 4: enrich only the selected rows.
	rows = s.movers.Enrich(ctx, rows)

	report := &models.Report{
		Date:        dateStr,
		Mode:        mode,
		Rows:        rows,
		GeneratedAt: time.Now().UTC(),
	}

	// Step 5: render and store.
	html, err := Render(report)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveHTML(ctx, report, html); err != nil {
		return nil, fmt.Errorf("save report html: %w", err)
	}
	if err := s.store.SaveReport(ctx, report); err != nil {
		return nil, fmt.Errorf("archive report: %w", err)
	}

	s.logger.Info().
		Str("date", dateStr).
		Int("rows", len(rows)).
		Msg("Report generated and stored")

	return report, nil
}

// Ensure Service implements ReportService
var _ interfaces.ReportService = (*Service)(nil)
