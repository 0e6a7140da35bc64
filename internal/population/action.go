// Package population runs pipeline 1: fetch the population list page,
// extract and clean its table, rank the top rows, and render the chart.
package population

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/dnorberg/wiki-scraper/internal/common"
	"github.com/dnorberg/wiki-scraper/models"
	"github.com/dnorberg/wiki-scraper/pkg/chart"
	"github.com/dnorberg/wiki-scraper/pkg/fetcher"
	"github.com/dnorberg/wiki-scraper/pkg/popdata"
	"github.com/dnorberg/wiki-scraper/pkg/tables"
)

// Action is the `population` subcommand: run pipeline 1 once.
func Action(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.IsSet("url") {
		config.PopulationURL = c.String("url")
	}

	return Run(logger, config)
}

// Run executes the population pipeline against the configured URL.
// Every failure is reported to the user; the returned error lets the
// caller decide whether the overall program continues.
func Run(logger *slog.Logger, config *models.Config) error {
	// The population fetch deliberately has no timeout.
	f := fetcher.NewFetcher(config.UserAgent, 0)

	fmt.Printf("Attempting to scrape tables from: %s\n", config.PopulationURL)
	doc, err := f.GetDocument(config.PopulationURL)
	if err != nil {
		fmt.Printf("Error accessing the URL: %v\n", err)
		return err
	}

	all := tables.ExtractAll(doc)
	fmt.Printf("Successfully found %d table(s) on the page.\n", len(all))

	ds, ok := tables.FindByColumn(doc, popdata.PopulationColumn)
	if !ok {
		fmt.Println("Could not find a table with the 'Population' column.")
		return nil
	}
	fmt.Println("Found the correct table with the 'Population' column.")

	cleaned, err := popdata.Clean(ds)
	if err != nil {
		if errors.Is(err, popdata.ErrMissingColumn) || errors.Is(err, popdata.ErrNoData) {
			fmt.Printf("Data is not usable: %v\n", err)
			return nil
		}
		logger.Error("cleaning failed", "error", err)
		return err
	}
	fmt.Println("Data successfully cleaned and converted to numeric.")
	fmt.Printf("The average population is: %s\n", humanize.CommafWithDigits(cleaned.Mean(), 2))

	top := cleaned.TopN(config.TopN)
	logger.Info("ranked population rows", "total", len(cleaned.Values), "top", len(top.Values))

	renderer := chart.NewRenderer(config.Chart.OutputDir, config.Chart.FileName)
	path, replaced, err := renderer.Save(top)
	if err != nil {
		switch {
		case errors.Is(err, chart.ErrNoData):
			fmt.Println("No data to plot.")
			return nil
		case errors.Is(err, chart.ErrNoLabelColumn):
			fmt.Println("Error creating chart: could not find a suitable column for countries.")
			return nil
		default:
			fmt.Printf("Error creating chart: %v\n", err)
			return err
		}
	}
	if replaced {
		logger.Info("replaced existing chart", "path", path)
	}
	fmt.Printf("Chart saved to: %s\n", path)

	if config.Chart.OpenViewer {
		if err := chart.OpenViewer(path); err != nil {
			logger.Warn("could not open chart viewer", "error", err)
		}
	}
	return nil
}
