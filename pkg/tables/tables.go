// Package tables parses HTML tables into ordered column datasets and
// locates the one carrying population data.
package tables

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dnorberg/wiki-scraper/models"
)

// ExtractAll parses every <table> element in the document into a dataset.
// Tables with no detectable header row are skipped.
func ExtractAll(doc *goquery.Document) []models.Dataset {
	var datasets []models.Dataset
	doc.Find("table").Each(func(i int, table *goquery.Selection) {
		if ds := extractTable(table); ds != nil {
			datasets = append(datasets, *ds)
		}
	})
	return datasets
}

// FindByColumn returns the first table on the page whose column set
// contains the named column (exact match after whitespace stripping).
// The boolean reports whether such a table was found; when false the
// returned dataset is empty.
func FindByColumn(doc *goquery.Document, column string) (models.Dataset, bool) {
	for _, ds := range ExtractAll(doc) {
		if ds.HasColumn(column) {
			return ds, true
		}
	}
	return models.Dataset{}, false
}

func extractTable(table *goquery.Selection) *models.Dataset {
	var headers []string
	bodyRows := table.Find("tr")

	// Explicit header section first.
	table.Find("thead tr").First().Find("th,td").Each(func(i int, cell *goquery.Selection) {
		headers = append(headers, normalizeText(cell.Text()))
	})
	if len(headers) > 0 {
		bodyRows = table.Find("tbody tr")
	} else if bodyRows.Length() > 0 {
		// Fallback: first row acts as the header.
		bodyRows.First().Find("th,td").Each(func(i int, cell *goquery.Selection) {
			headers = append(headers, normalizeText(cell.Text()))
		})
		bodyRows = bodyRows.Slice(1, bodyRows.Length())
	}

	if len(headers) == 0 {
		return nil
	}
	headers = dedupeNames(headers)

	columns := make([]models.Column, len(headers))
	for i, name := range headers {
		columns[i] = models.Column{Name: name}
	}

	bodyRows.Each(func(i int, tr *goquery.Selection) {
		cells := tr.Find("th,td")
		if cells.Length() == 0 {
			return
		}
		row := make([]string, len(headers))
		cells.Each(func(j int, cell *goquery.Selection) {
			if j < len(row) {
				row[j] = normalizeText(cell.Text())
			}
		})
		for c := range columns {
			columns[c].Values = append(columns[c].Values, row[c])
		}
	})

	return &models.Dataset{Columns: columns}
}

// dedupeNames makes duplicate column names unique by appending a
// numeric suffix to repeats: Name, Name.1, Name.2, ...
func dedupeNames(names []string) []string {
	seen := make(map[string]int, len(names))
	out := make([]string, len(names))
	for i, name := range names {
		n := seen[name]
		seen[name] = n + 1
		if n == 0 {
			out[i] = name
		} else {
			out[i] = fmt.Sprintf("%s.%d", name, n)
		}
	}
	return out
}

// normalizeText collapses a cell's text to single-space-separated lines
// with no leading or trailing whitespace.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
