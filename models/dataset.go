package models

import "strings"

// Column is one named column of a tabular dataset, in page order.
type Column struct {
	Name   string
	Values []string
}

// Dataset is an ordered collection of columns extracted from an HTML table.
// All columns hold the same number of values.
type Dataset struct {
	Columns []Column
}

// Len returns the number of rows in the dataset.
func (d *Dataset) Len() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return len(d.Columns[0].Values)
}

// Empty reports whether the dataset has no rows or no columns.
func (d *Dataset) Empty() bool {
	return d.Len() == 0
}

// ColumnIndex returns the position of the named column, or -1.
func (d *Dataset) ColumnIndex(name string) int {
	for i, col := range d.Columns {
		if col.Name == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (d *Dataset) HasColumn(name string) bool {
	return d.ColumnIndex(name) >= 0
}

// ColumnNames returns the column names in page order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		names[i] = col.Name
	}
	return names
}

// Row returns the cells of row i across all columns.
func (d *Dataset) Row(i int) []string {
	row := make([]string, len(d.Columns))
	for c, col := range d.Columns {
		row[c] = col.Values[i]
	}
	return row
}

// Select returns a new dataset containing only the given row indices,
// in the given order. Column order is preserved.
func (d *Dataset) Select(rows []int) Dataset {
	out := Dataset{Columns: make([]Column, len(d.Columns))}
	for c, col := range d.Columns {
		values := make([]string, len(rows))
		for i, r := range rows {
			values[i] = col.Values[r]
		}
		out.Columns[c] = Column{Name: col.Name, Values: values}
	}
	return out
}

// IsTextColumn reports whether a column holds mostly non-numeric values.
// Mirrors the notion of an "object" column in tabular tooling: a single
// numeric-looking cell does not make the column numeric.
func IsTextColumn(col Column) bool {
	if len(col.Values) == 0 {
		return true
	}
	numeric := 0
	for _, v := range col.Values {
		if looksNumeric(v) {
			numeric++
		}
	}
	return numeric*2 < len(col.Values)
}

func looksNumeric(s string) bool {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return false
	}
	dot := false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' && !dot:
			dot = true
		case (r == '-' || r == '+') && i == 0:
		default:
			return false
		}
	}
	return true
}
