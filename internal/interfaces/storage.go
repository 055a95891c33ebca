// Package interfaces defines service contracts for Daybrief
package interfaces

import (
	"context"

	"github.com/bobmcallan/daybrief/internal/models"
)

// ReportStore persists rendered reports and their JSON archives
type ReportStore interface {
	// SaveHTML writes the rendered document to the latest file
	// (index.html) and the dated archive file for the report's date.
	// Both files receive byte-identical content.
	SaveHTML(ctx context.Context, report *models.Report, html string) error

	// SaveReport archives the report model as JSON keyed by date
	SaveReport(ctx context.Context, report *models.Report) error

	// GetReport loads an archived report by date string
	GetReport(ctx context.Context, date string) (*models.Report, error)

	// ListReports returns the archived report dates, newest first
	ListReports(ctx context.Context) ([]string, error)
}
