package common

import (
	"fmt"
	"os"
	"strings"

	"github.com/ternarybob/banner"
)

// PrintBanner displays the application startup banner to stderr.
func PrintBanner(config *Config) {
	version := GetVersion()
	build := GetBuild()
	commit := GetGitCommit()

	lineColor := banner.ColorCyan
	textColor := banner.ColorBold + banner.ColorWhite
	width := 70
	hr := lineColor + strings.Repeat("═", width) + banner.ColorReset

	art := []string{
		` 8888888b.        d8888 Y88b   d88P 888888b.  8888888b.  8888888 8888888888 8888888888`,
		` 888  "Y88b      d88888  Y88b d88P  888  "88b 888   Y88b   888   888        888`,
		` 888    888     d88P888   Y88o88P   888  .88P 888    888   888   888        888`,
		` 888    888    d88P 888    Y888P    8888888K. 888   d88P   888   8888888    8888888`,
		` 888    888   d88P  888     888     888  "Y88b 8888888P"   888   888        888`,
		` 888    888  d88P   888     888     888    888 888 T88b    888   888        888`,
		` 888  .d88P d8888888888     888     888   d88P 888  T88b   888   888        888`,
		` 8888888P" d88P     888     888     8888888P"  888   T88b 8888888 8888888888 888`,
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s\n", hr)
	fmt.Fprintf(os.Stderr, "\n")
	for _, line := range art {
		fmt.Fprintf(os.Stderr, "%s%s%s\n", textColor, line, banner.ColorReset)
	}
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s  Daily Market Movers Report%s\n", textColor, banner.ColorReset)
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s\n", hr)
	fmt.Fprintf(os.Stderr, "\n")

	kvPad := 16
	kvLines := [][2]string{
		{"Version", version},
		{"Build", build},
		{"Commit", commit},
		{"Environment", config.Environment},
		{"Mode", config.Report.Mode},
		{"Output", config.Report.OutputDir},
	}
	for _, kv := range kvLines {
		fmt.Fprintf(os.Stderr, "%s  %-*s %s%s\n", textColor, kvPad, kv[0], kv[1], banner.ColorReset)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s\n", hr)
	fmt.Fprintf(os.Stderr, "\n")
}
