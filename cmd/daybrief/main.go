package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/bobmcallan/daybrief/internal/app"
	"github.com/bobmcallan/daybrief/internal/common"
)

func main() {
	configFlag := flag.String("config", "", "path to daybrief.toml (defaults to DAYBRIEF_CONFIG, then ./daybrief.toml)")
	dateFlag := flag.String("date", "", "run date as YYYY-MM-DD (defaults to today)")
	modeFlag := flag.String("mode", "", "candidate source: index, news or snapshot (overrides config)")
	scheduleFlag := flag.String("schedule", "", "cron expression for repeated runs (overrides config; empty = single run)")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(common.GetFullVersion())
		return
	}

	// .env is optional; real environments set POLYGON_API_KEY directly.
	_ = godotenv.Load(".env")

	if *modeFlag != "" {
		os.Setenv("DAYBRIEF_MODE", *modeFlag)
	}

	a, err := app.NewApp(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	common.PrintBanner(a.Config)

	date, err := resolveDate(*dateFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -date: %v\n", err)
		os.Exit(1)
	}

	schedule := *scheduleFlag
	if schedule == "" {
		schedule = a.Config.Report.Schedule
	}

	if schedule == "" {
		if err := a.Run(context.Background(), date); err != nil {
			a.Logger.Error().Err(err).Msg("Report run failed")
			os.Exit(1)
		}
		return
	}

	runScheduled(a, schedule)
}

// resolveDate parses the -date flag, defaulting to today.
func resolveDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", raw)
}

// runScheduled runs the pipeline on a cron schedule until interrupted.
// Each firing uses that day's date.
func runScheduled(a *app.App, schedule string) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		if err := a.Run(context.Background(), time.Now()); err != nil {
			a.Logger.Error().Err(err).Msg("Scheduled report run failed")
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid schedule %q: %v\n", schedule, err)
		os.Exit(1)
	}

	a.Logger.Info().Str("schedule", schedule).Msg("Scheduler started")
	c.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	a.Logger.Info().Msg("Shutdown signal received")

	ctx := c.Stop()
	<-ctx.Done()

	a.Logger.Info().Msg("Scheduler stopped")
}
