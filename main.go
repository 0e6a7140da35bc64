package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dnorberg/wiki-scraper/internal/common"
	"github.com/dnorberg/wiki-scraper/internal/history"
	"github.com/dnorberg/wiki-scraper/internal/population"
	"github.com/dnorberg/wiki-scraper/internal/sections"
	"github.com/dnorberg/wiki-scraper/models"
)

func main() {
	app := &cli.App{
		Name:  "wiki-scraper",
		Usage: "scrape Wikipedia population tables and analyze page section structure",
		Description: `Running without a subcommand executes the full program: the population
pipeline once, then the interactive section-analysis loop.

Examples:
   wiki-scraper                        # full run with config.yaml defaults
   wiki-scraper population             # chart pipeline only
   wiki-scraper population --url URL   # chart pipeline against another list page
   wiki-scraper sections               # interactive section analysis only
   wiki-scraper history --limit 5      # last five analyzed pages`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to the YAML config file",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
		},
		// Default run: population pipeline once, then the interactive
		// section-analysis loop.
		Action: runAll,
		Commands: []*cli.Command{
			{
				Name:   "population",
				Usage:  "fetch the population list, rank the top rows, render the chart",
				Action: population.Action,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "url",
						Usage: "override the population list URL",
					},
				},
			},
			{
				Name:   "sections",
				Usage:  "interactively analyze the section structure of Wikipedia pages",
				Action: sections.Action,
			},
			{
				Name:   "history",
				Usage:  "list recently analyzed pages",
				Action: history.Action,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "maximum number of history entries to show",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runAll(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	// A failed population pipeline is reported but never blocks the
	// interactive loop.
	if err := population.Run(logger, config); err != nil {
		logger.Error("population pipeline failed", "error", err)
	}

	return sections.Loop(logger, config, c.App.Reader)
}
