package popdata

import (
	"errors"
	"math"
	"testing"

	"github.com/dnorberg/wiki-scraper/models"
)

func popDataset(countries []string, populations []string) models.Dataset {
	return models.Dataset{Columns: []models.Column{
		{Name: "Country", Values: countries},
		{Name: "Population", Values: populations},
	}}
}

func TestCleanStripsSeparatorsAndFootnotes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "commas and footnote", raw: "1,234,567[3]", want: 1234567},
		{name: "plain integer", raw: "42", want: 42},
		{name: "footnote only", raw: "500[12]", want: 500},
		{name: "surrounding whitespace", raw: " 1,000 ", want: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := popDataset([]string{"X"}, []string{tt.raw})
			cleaned, err := Clean(ds)
			if err != nil {
				t.Fatalf("Clean returned error: %v", err)
			}
			if cleaned.Values[0] != tt.want {
				t.Errorf("cleaned %q = %v, want %v", tt.raw, cleaned.Values[0], tt.want)
			}
		})
	}
}

func TestCleanDropsUnparseableRows(t *testing.T) {
	ds := popDataset(
		[]string{"A", "B", "C", "D"},
		[]string{"100", "N/A", "300", "—"},
	)

	cleaned, err := Clean(ds)
	if err != nil {
		t.Fatalf("Clean returned error: %v", err)
	}

	if got := cleaned.Data.Len(); got != 2 {
		t.Fatalf("rows after cleaning = %d, want 2", got)
	}
	// The whole row is dropped, not just the population cell.
	if got := cleaned.Data.Columns[0].Values; got[0] != "A" || got[1] != "C" {
		t.Errorf("surviving countries = %v, want [A C]", got)
	}
	// Dropped rows are excluded from the mean.
	if got := cleaned.Mean(); got != 200 {
		t.Errorf("mean = %v, want 200", got)
	}
}

func TestCleanMissingColumn(t *testing.T) {
	ds := models.Dataset{Columns: []models.Column{
		{Name: "Country", Values: []string{"A"}},
	}}
	if _, err := Clean(ds); !errors.Is(err, ErrMissingColumn) {
		t.Errorf("err = %v, want ErrMissingColumn", err)
	}
}

func TestCleanNoParseableRows(t *testing.T) {
	ds := popDataset([]string{"A", "B"}, []string{"N/A", ""})
	if _, err := Clean(ds); !errors.Is(err, ErrNoData) {
		t.Errorf("err = %v, want ErrNoData", err)
	}
}

func TestTopNDescending(t *testing.T) {
	ds := popDataset(
		[]string{"A", "B", "C", "D"},
		[]string{"5", "3", "9", "1"},
	)
	cleaned, err := Clean(ds)
	if err != nil {
		t.Fatalf("Clean returned error: %v", err)
	}

	top := cleaned.TopN(10)
	want := []float64{9, 5, 3, 1}
	if len(top.Values) != len(want) {
		t.Fatalf("len = %d, want %d", len(top.Values), len(want))
	}
	for i, v := range want {
		if top.Values[i] != v {
			t.Errorf("top.Values[%d] = %v, want %v", i, top.Values[i], v)
		}
	}
	if got := top.Data.Columns[0].Values[0]; got != "C" {
		t.Errorf("largest row country = %q, want C", got)
	}
}

func TestTopNLimitsToN(t *testing.T) {
	countries := make([]string, 15)
	populations := make([]string, 15)
	for i := range countries {
		countries[i] = string(rune('A' + i))
		populations[i] = []string{"10", "20", "30", "40", "50", "60", "70", "80", "90", "100", "110", "120", "130", "140", "150"}[i]
	}

	cleaned, err := Clean(popDataset(countries, populations))
	if err != nil {
		t.Fatalf("Clean returned error: %v", err)
	}

	top := cleaned.TopN(10)
	if len(top.Values) != 10 {
		t.Fatalf("len = %d, want 10", len(top.Values))
	}
	if top.Values[0] != 150 || top.Values[9] != 60 {
		t.Errorf("top range = [%v..%v], want [150..60]", top.Values[0], top.Values[9])
	}
}

func TestMean(t *testing.T) {
	cleaned, err := Clean(popDataset(
		[]string{"A", "B", "C"},
		[]string{"1,000[1]", "2,000", "3,000[22]"},
	))
	if err != nil {
		t.Fatalf("Clean returned error: %v", err)
	}
	if got := cleaned.Mean(); math.Abs(got-2000) > 1e-9 {
		t.Errorf("mean = %v, want 2000", got)
	}
}
