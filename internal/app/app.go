// Package app wires configuration, clients, services and storage
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bobmcallan/daybrief/internal/clients/polygon"
	"github.com/bobmcallan/daybrief/internal/clients/wikipedia"
	"github.com/bobmcallan/daybrief/internal/common"
	"github.com/bobmcallan/daybrief/internal/interfaces"
	"github.com/bobmcallan/daybrief/internal/services/candidates"
	"github.com/bobmcallan/daybrief/internal/services/movers"
	"github.com/bobmcallan/daybrief/internal/services/report"
	"github.com/bobmcallan/daybrief/internal/storage/reportfs"
)

// App holds all initialized clients and services for a report run.
type App struct {
	Config        *common.Config
	Logger        *common.Logger
	Market        interfaces.MarketDataClient
	Constituents  interfaces.ConstituentsClient
	Source        interfaces.CandidateSource
	Movers        interfaces.MoversService
	ReportService interfaces.ReportService
	Store         interfaces.ReportStore
	StartupTime   time.Time
}

// NewApp initializes configuration, logging, clients and services.
// configPath may be empty, in which case default resolution is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	if configPath == "" {
		configPath = os.Getenv("DAYBRIEF_CONFIG")
	}
	if configPath == "" {
		configPath = "daybrief.toml"
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	// The market data credential is the one fatal prerequisite: without
	// it no report can be produced.
	apiKey, err := common.ResolveAPIKey(
		[]string{"POLYGON_API_KEY", "DAYBRIEF_POLYGON_API_KEY"},
		config.Clients.Polygon.APIKey,
	)
	if err != nil {
		return nil, fmt.Errorf("missing Polygon credential: %w", err)
	}

	market := polygon.NewClient(apiKey,
		polygon.WithLogger(logger),
		polygon.WithRateLimit(config.Clients.Polygon.RateLimit),
		polygon.WithTimeout(config.Clients.Polygon.GetTimeout()),
	)

	constituents := wikipedia.NewClient(
		wikipedia.WithURL(config.Clients.Wikipedia.URL),
		wikipedia.WithTimeout(config.Clients.Wikipedia.GetTimeout()),
		wikipedia.WithLogger(logger),
	)

	source := newSource(config, market, constituents, logger)
	moversService := movers.NewService(market, config.Report.NewsPerTicker, logger)

	store, err := reportfs.NewStore(logger, config.Report.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize report store: %w", err)
	}

	reportService := report.NewService(source, moversService, store, report.Options{
		MaxRows:     config.Report.MaxRows,
		TopEachSide: config.Report.TopEachSide,
	}, logger)

	logger.Info().
		Str("mode", source.Mode()).
		Dur("startup", time.Since(startupStart)).
		Msg("App initialized")

	return &App{
		Config:        config,
		Logger:        logger,
		Market:        market,
		Constituents:  constituents,
		Source:        source,
		Movers:        moversService,
		ReportService: reportService,
		Store:         store,
		StartupTime:   startupStart,
	}, nil
}

// newSource selects the candidate source for the configured mode.
func newSource(
	config *common.Config,
	market interfaces.MarketDataClient,
	constituents interfaces.ConstituentsClient,
	logger *common.Logger,
) interfaces.CandidateSource {
	switch config.Report.Mode {
	case common.ModeIndex:
		return candidates.NewIndexSource(constituents, market, config.Report.NewsPerTicker, logger)
	case common.ModeSnapshot:
		return candidates.NewSnapshotSource(market, logger)
	default:
		return candidates.NewNewsSource(market, config.Report.NewsLimit, logger)
	}
}

// Run generates the report for a single run date.
func (a *App) Run(ctx context.Context, date time.Time) error {
	_, err := a.ReportService.Generate(ctx, date)
	return err
}
