// Package sections runs pipeline 2: the interactive loop that fetches
// user-supplied pages and prints per-section structure counts.
package sections

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dnorberg/wiki-scraper/internal/common"
	"github.com/dnorberg/wiki-scraper/models"
	"github.com/dnorberg/wiki-scraper/pkg/db"
	"github.com/dnorberg/wiki-scraper/pkg/fetcher"
	"github.com/dnorberg/wiki-scraper/pkg/sections"
)

// Action is the `sections` subcommand: run the interactive loop only.
func Action(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	return Loop(logger, config, c.App.Reader)
}

// Analyzer bundles the pieces one analysis run needs.
type Analyzer struct {
	logger   *slog.Logger
	fetcher  *fetcher.Fetcher
	analyzer *sections.Analyzer
	history  *db.DB
}

// NewAnalyzer wires the section analyzer for the given config. The
// history database is optional; failure to open it is reported and the
// analyzer works without it.
func NewAnalyzer(logger *slog.Logger, config *models.Config) *Analyzer {
	a := &Analyzer{
		logger:   logger,
		fetcher:  fetcher.NewFetcher(config.UserAgent, time.Duration(config.FetchTimeout)),
		analyzer: sections.NewAnalyzer(config.DetectLanguage),
	}

	if config.HistoryDB {
		history, err := db.Open()
		if err != nil {
			logger.Warn("history database unavailable", "error", err)
		} else {
			a.history = history
		}
	}
	return a
}

// Close releases the history database, if open.
func (a *Analyzer) Close() {
	if a.history != nil {
		_ = a.history.Close()
	}
}

// AnalyzeOne fetches one page and prints its section metrics. All
// failures are reported to the user and swallowed: the caller's loop
// always continues.
func (a *Analyzer) AnalyzeOne(rawURL string) {
	pageURL, err := common.ValidateURL(rawURL)
	if err != nil {
		fmt.Printf("Invalid URL: %v\n", err)
		return
	}

	fmt.Printf("Analyzing page content for: %s\n", pageURL)

	html, err := a.fetcher.GetBytes(pageURL)
	if err != nil {
		fmt.Printf("Error accessing the URL: %v\n", err)
		a.recordFailure(pageURL, err)
		return
	}

	analysis, err := a.analyzer.Analyze(pageURL, html)
	if err != nil {
		fmt.Printf("An unexpected error occurred: %v\n", err)
		a.recordFailure(pageURL, err)
		return
	}

	printAnalysis(analysis)

	if a.history != nil {
		if _, err := a.history.RecordAnalysis(analysis); err != nil {
			a.logger.Warn("could not record analysis", "url", pageURL, "error", err)
		}
	}
}

func (a *Analyzer) recordFailure(pageURL string, cause error) {
	if a.history == nil {
		return
	}
	if err := a.history.RecordFailure(pageURL, cause); err != nil {
		a.logger.Warn("could not record failure", "url", pageURL, "error", err)
	}
}

func printAnalysis(analysis *models.PageAnalysis) {
	if len(analysis.Sections) == 1 && analysis.Sections[0].Name == sections.MainContentSection {
		fmt.Println("No main sections found. Analyzing the entire page.")
	}

	for _, s := range analysis.Sections {
		if s.NoContent {
			fmt.Printf("Could not find content for section: %s\n", s.Name)
			continue
		}
		fmt.Println(strings.Repeat("-", 20))
		fmt.Println("Section:", s.Name)
		fmt.Println("Paragraphs:", s.Paragraphs)
		fmt.Println("Hyperlinks:", s.Hyperlinks)
		fmt.Println("Pictures:", s.Pictures)
		fmt.Println("Words:", s.Words)
		fmt.Println(strings.Repeat("-", 20))
	}

	if analysis.Language != "" {
		fmt.Printf("Detected language: %s\n", analysis.Language)
	}
	if len(analysis.Keywords) > 0 {
		fmt.Printf("Top keywords: %s\n", strings.Join(analysis.Keywords, ", "))
	}
}

// Loop prompts for URLs until the user answers anything but "y".
// Analysis errors never break the loop.
func Loop(logger *slog.Logger, config *models.Config, in io.Reader) error {
	analyzer := NewAnalyzer(logger, config)
	defer analyzer.Close()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Print("\nInsert the URL of the Wikipedia page you want to analyze: ")
		if !scanner.Scan() {
			break
		}
		analyzer.AnalyzeOne(scanner.Text())

		fmt.Print("Do you want to analyze another URL? (y/n): ")
		if !scanner.Scan() {
			break
		}
		if !strings.EqualFold(strings.TrimSpace(scanner.Text()), "y") {
			break
		}
	}

	fmt.Println("Program terminated.")
	return scanner.Err()
}
