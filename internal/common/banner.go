package common

import (
	"fmt"
	"io"
	"strings"

	"github.com/ternarybob/banner"
)

// BannerInfo is what the startup banner reports.
type BannerInfo struct {
	Environment string
	ServiceURL  string
	Source      string
	Words       int
	Affixes     int
	Roots       int
}

// PrintBanner writes the startup banner to w and logs the same facts.
func PrintBanner(w io.Writer, info BannerInfo, logger *Logger) {
	lineColor := banner.ColorCyan
	textColor := banner.ColorBold + banner.ColorWhite
	hr := lineColor + strings.Repeat("═", 60) + banner.ColorReset

	fmt.Fprintf(w, "\n%s\n\n", hr)
	fmt.Fprintf(w, "%s  WORD ANALYZER  ·  dictionary & affix lookup%s\n", textColor, banner.ColorReset)
	fmt.Fprintf(w, "\n%s\n\n", hr)

	kvLines := [][2]string{
		{"Version", Version},
		{"Build", Build},
		{"Commit", GitCommit},
		{"Environment", info.Environment},
		{"Service URL", info.ServiceURL},
		{"Data source", info.Source},
		{"Dataset", fmt.Sprintf("%d words, %d affixes, %d roots", info.Words, info.Affixes, info.Roots)},
	}
	for _, kv := range kvLines {
		fmt.Fprintf(w, "%s  %-14s %s%s\n", textColor, kv[0], kv[1], banner.ColorReset)
	}
	fmt.Fprintf(w, "\n%s\n\n", hr)

	logger.Info().
		Str("version", Version).
		Str("commit", GitCommit).
		Str("environment", info.Environment).
		Str("service_url", info.ServiceURL).
		Str("source", info.Source).
		Msg("Application started")
}

// PrintShutdownBanner writes the shutdown banner to w.
func PrintShutdownBanner(w io.Writer, logger *Logger) {
	hr := banner.ColorCyan + strings.Repeat("═", 42) + banner.ColorReset
	fmt.Fprintf(w, "\n%s\n", hr)
	fmt.Fprintf(w, "%s  WORD ANALYZER: SHUTTING DOWN%s\n", banner.ColorBold+banner.ColorWhite, banner.ColorReset)
	fmt.Fprintf(w, "%s\n\n", hr)

	logger.Info().Msg("Application shutting down")
}
