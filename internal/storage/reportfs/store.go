// Package reportfs provides file-based persistence for rendered reports
package reportfs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bobmcallan/daybrief/internal/common"
	"github.com/bobmcallan/daybrief/internal/interfaces"
	"github.com/bobmcallan/daybrief/internal/models"
)

const (
	latestFile    = "index.html"
	archivePrefix = "daily_table_"
	reportsDir    = "reports"
)

// Store writes rendered reports under a base output directory:
// index.html (latest), daily_table_<date>.html (dated archive) and
// reports/<date>.json (model archive).
type Store struct {
	basePath string
	logger   *common.Logger
}

// NewStore creates a new Store and ensures the directory layout exists.
func NewStore(logger *common.Logger, basePath string) (*Store, error) {
	if basePath == "" {
		basePath = "docs"
	}

	if err := os.MkdirAll(filepath.Join(basePath, reportsDir), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	logger.Debug().Str("path", basePath).Msg("Report store opened")

	return &Store{
		basePath: basePath,
		logger:   logger,
	}, nil
}

// sanitizeKey makes a date key safe for use as a filename.
func sanitizeKey(key string) string {
	r := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "..", "_")
	return r.Replace(key)
}

// writeFileAtomic writes data to path via a temp file and rename so a
// failed run never leaves a truncated report behind.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// SaveHTML writes the rendered document to the latest file and the
// dated archive file with byte-identical content.
func (s *Store) SaveHTML(_ context.Context, report *models.Report, html string) error {
	data := []byte(html)

	latest := filepath.Join(s.basePath, latestFile)
	if err := writeFileAtomic(latest, data); err != nil {
		return err
	}

	dated := filepath.Join(s.basePath, archivePrefix+sanitizeKey(report.Date)+".html")
	if err := writeFileAtomic(dated, data); err != nil {
		return err
	}

	s.logger.Info().Str("latest", latest).Str("dated", dated).Msg("Report HTML written")

	return nil
}

// SaveReport archives the report model as indented JSON keyed by date.
func (s *Store) SaveReport(_ context.Context, report *models.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	path := filepath.Join(s.basePath, reportsDir, sanitizeKey(report.Date)+".json")
	return writeFileAtomic(path, data)
}

// GetReport loads an archived report by date string.
func (s *Store) GetReport(_ context.Context, date string) (*models.Report, error) {
	path := filepath.Join(s.basePath, reportsDir, sanitizeKey(date)+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("report '%s' not found", date)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var report models.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &report, nil
}

// ListReports returns archived report dates, newest first.
func (s *Store) ListReports(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.basePath, reportsDir))
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	var dates []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		dates = append(dates, strings.TrimSuffix(name, ".json"))
	}

	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates, nil
}

// Ensure Store implements ReportStore
var _ interfaces.ReportStore = (*Store)(nil)
