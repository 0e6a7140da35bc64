// Package chart renders the top-population bar chart as a PNG.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/dnorberg/wiki-scraper/models"
	"github.com/dnorberg/wiki-scraper/pkg/popdata"
	"github.com/dnorberg/wiki-scraper/pkg/storage"
)

// ErrNoLabelColumn is returned when no column qualifies as the bar label.
var ErrNoLabelColumn = errors.New("could not find a suitable label column")

// ErrNoData is returned when the ranked subset has no rows to plot.
var ErrNoData = errors.New("no data to plot")

var barColor = drawing.ColorFromHex("87ceeb") // sky blue

// LabelColumn picks the column used for bar labels. Predicates are
// tried in order and the first hit wins:
//  1. name contains "Country" or "Dependency";
//  2. textual column whose name contains none of "Population",
//     "Region", "Date".
func LabelColumn(ds models.Dataset) (int, error) {
	for i, col := range ds.Columns {
		if strings.Contains(col.Name, "Country") || strings.Contains(col.Name, "Dependency") {
			return i, nil
		}
	}
	for i, col := range ds.Columns {
		if !models.IsTextColumn(col) {
			continue
		}
		if strings.Contains(col.Name, "Population") ||
			strings.Contains(col.Name, "Region") ||
			strings.Contains(col.Name, "Date") {
			continue
		}
		return i, nil
	}
	return 0, ErrNoLabelColumn
}

// Renderer draws the ranked population subset and persists it.
type Renderer struct {
	OutputDir string
	FileName  string
	Title     string

	store *storage.Storage
}

// NewRenderer returns a renderer writing to dir/name.
func NewRenderer(dir, name string) *Renderer {
	return &Renderer{
		OutputDir: dir,
		FileName:  name,
		Title:     "Top 10 Most Populous Countries in the World",
		store:     &storage.Storage{},
	}
}

// Render draws a vertical bar chart of the ranked subset to w.
func (r *Renderer) Render(top popdata.Cleaned, w io.Writer) error {
	if len(top.Values) == 0 {
		return ErrNoData
	}

	labelIdx, err := LabelColumn(top.Data)
	if err != nil {
		return err
	}
	labels := top.Data.Columns[labelIdx].Values

	bars := make([]chart.Value, len(top.Values))
	for i, v := range top.Values {
		bars[i] = chart.Value{
			Label: labels[i],
			Value: v,
			Style: chart.Style{FillColor: barColor, StrokeColor: barColor},
		}
	}

	bc := chart.BarChart{
		Title:      r.Title,
		Width:      1440,
		Height:     900,
		BarWidth:   50,
		BarSpacing: 90,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 30, Right: 30, Bottom: 120},
		},
		XAxis: chart.Style{TextRotationDegrees: 45},
		YAxis: chart.YAxis{
			Name: "Population",
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return humanize.CommafWithDigits(f, 0)
				}
				return fmt.Sprintf("%v", v)
			},
		},
		Bars: bars,
	}

	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// Save renders the chart to its configured path, creating the output
// directory if needed. Rendering happens in memory first so a failed
// render never truncates an existing chart. Returns the path written
// and whether an existing file was replaced.
func (r *Renderer) Save(top popdata.Cleaned) (string, bool, error) {
	var buf bytes.Buffer
	if err := r.Render(top, &buf); err != nil {
		return "", false, err
	}

	if err := r.store.EnsureDir(r.OutputDir); err != nil {
		return "", false, err
	}

	path := filepath.Join(r.OutputDir, r.FileName)
	replaced := r.store.HasFile(path)
	if err := r.store.SaveFile(path, buf.Bytes()); err != nil {
		return "", false, err
	}
	return path, replaced, nil
}
