// Package history implements the `history` subcommand, listing past
// section-analysis runs from the local database.
package history

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/dnorberg/wiki-scraper/pkg/db"
)

// Action prints the most recent analysis runs as YAML.
func Action(c *cli.Context) error {
	database, err := db.Open()
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer database.Close()

	records, err := database.RecentPages(c.Int("limit"))
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No analysis history yet.")
		return nil
	}

	out := struct {
		Pages []db.PageRecord `yaml:"pages"`
	}{Pages: records}

	yamlBytes, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	fmt.Print(string(yamlBytes))
	return nil
}
