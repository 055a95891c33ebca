// Package interfaces defines service contracts for Daybrief
package interfaces

import (
	"context"
	"time"

	"github.com/bobmcallan/daybrief/internal/models"
)

// CandidateSource produces the deduplicated set of tickers to evaluate
// for a run date. A source-level failure returns an error alongside an
// empty set; callers log and continue with zero candidates.
type CandidateSource interface {
	// Mode returns the source's configuration name ("index", "news", "snapshot")
	Mode() string

	// Candidates produces candidates for the given run date
	Candidates(ctx context.Context, date time.Time) ([]models.Candidate, error)
}

// MoversService computes row metrics for candidates
type MoversService interface {
	// BuildRows computes percentage change for each candidate and drops
	// any candidate without a valid change
	BuildRows(ctx context.Context, candidates []models.Candidate, date time.Time) []models.Row

	// Enrich fills in company names and missing notes for rows
	Enrich(ctx context.Context, rows []models.Row) []models.Row
}

// ReportService runs the full daily report pipeline
type ReportService interface {
	// Generate runs source, metrics, selection, rendering and storage
	// for a run date and returns the stored report
	Generate(ctx context.Context, date time.Time) (*models.Report, error)
}
