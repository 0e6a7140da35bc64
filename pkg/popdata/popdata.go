// Package popdata cleans the Population column of a scraped table and
// ranks its rows.
package popdata

import (
	"errors"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dnorberg/wiki-scraper/models"
)

// PopulationColumn is the exact column name both pipelines key on.
const PopulationColumn = "Population"

var (
	// ErrMissingColumn is returned when the dataset has no Population column.
	ErrMissingColumn = errors.New("dataset has no Population column")
	// ErrNoData is returned when no row survives cleaning.
	ErrNoData = errors.New("no parseable population values")
)

// footnotePattern matches bracketed footnote markers such as [3] or [12].
var footnotePattern = regexp.MustCompile(`\[\d+\]`)

// Cleaned is a dataset whose Population column parsed to numbers.
// Rows that failed to parse have been dropped from every column.
// Values[i] is the numeric population of Data row i.
type Cleaned struct {
	Data   models.Dataset
	Values []float64
}

// Mean returns the arithmetic mean of the cleaned population values.
func (c *Cleaned) Mean() float64 {
	if len(c.Values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range c.Values {
		sum += v
	}
	return sum / float64(len(c.Values))
}

// Clean normalizes the Population column: strip thousands-separator
// commas, strip bracketed footnote markers, then parse as a number.
// Rows whose population does not parse are dropped entirely.
func Clean(ds models.Dataset) (*Cleaned, error) {
	idx := ds.ColumnIndex(PopulationColumn)
	if idx < 0 {
		return nil, ErrMissingColumn
	}

	var keep []int
	var values []float64
	for i, raw := range ds.Columns[idx].Values {
		v, ok := parsePopulation(raw)
		if !ok {
			continue
		}
		keep = append(keep, i)
		values = append(values, v)
	}
	if len(keep) == 0 {
		return nil, ErrNoData
	}

	cleaned := &Cleaned{Data: ds.Select(keep), Values: values}
	for i, v := range values {
		cleaned.Data.Columns[idx].Values[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return cleaned, nil
}

func parsePopulation(raw string) (float64, bool) {
	s := strings.ReplaceAll(raw, ",", "")
	s = footnotePattern.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// TopN returns the n rows with the largest population, descending.
// Fewer than n valid rows returns all of them. Ties keep their
// original relative order.
func (c *Cleaned) TopN(n int) Cleaned {
	order := make([]int, len(c.Values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return c.Values[order[i]] > c.Values[order[j]]
	})

	limit := n
	if len(order) < n {
		limit = len(order)
	}
	if limit < 0 {
		limit = 0
	}
	order = order[:limit]

	top := Cleaned{
		Data:   c.Data.Select(order),
		Values: make([]float64, limit),
	}
	for i, r := range order {
		top.Values[i] = c.Values[r]
	}
	return top
}
