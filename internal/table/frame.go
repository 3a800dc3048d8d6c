// Package table provides Frame, the column-oriented tabular payload that the
// CSV and Parquet codecs read and write.
package table

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Column is a named sequence of cell values. Cells hold nil, int64, float64,
// bool or string once decoded from a file.
type Column struct {
	Name   string `cbor:"name" json:"name" yaml:"name"`
	Values []any  `cbor:"values" json:"values" yaml:"values"`
}

// Frame is an ordered set of equal-length columns.
type Frame struct {
	Columns []Column `cbor:"columns" json:"columns" yaml:"columns"`
}

// New builds a frame from columns, checking names are unique and lengths
// agree.
func New(columns ...Column) (*Frame, error) {
	f := &Frame{}
	for _, c := range columns {
		if err := f.AddColumn(c.Name, c.Values); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// FromMap builds a frame from a name → values map. Columns are ordered by
// name since map order is not stable.
func FromMap(m map[string][]any) (*Frame, error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)

	f := &Frame{}
	for _, name := range names {
		if err := f.AddColumn(name, m[name]); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// AddColumn appends a column. The first column fixes the row count.
func (f *Frame) AddColumn(name string, values []any) error {
	if name == "" {
		return fmt.Errorf("column name cannot be empty")
	}
	if _, ok := f.Column(name); ok {
		return fmt.Errorf("duplicate column %q", name)
	}
	if len(f.Columns) > 0 && len(values) != f.Len() {
		return fmt.Errorf("column %q has %d values, frame has %d rows", name, len(values), f.Len())
	}
	f.Columns = append(f.Columns, Column{Name: name, Values: slices.Clone(values)})
	return nil
}

// AppendRow appends one value per column.
func (f *Frame) AppendRow(values ...any) error {
	if len(values) != len(f.Columns) {
		return fmt.Errorf("row has %d values, frame has %d columns", len(values), len(f.Columns))
	}
	for i := range f.Columns {
		f.Columns[i].Values = append(f.Columns[i].Values, values[i])
	}
	return nil
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	if len(f.Columns) == 0 {
		return 0
	}
	return len(f.Columns[0].Values)
}

// Width returns the number of columns.
func (f *Frame) Width() int {
	return len(f.Columns)
}

// Names returns the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.Columns))
	for i, c := range f.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the values of the named column.
func (f *Frame) Column(name string) ([]any, bool) {
	for _, c := range f.Columns {
		if c.Name == name {
			return c.Values, true
		}
	}
	return nil, false
}

// Row returns the i-th row across all columns.
func (f *Frame) Row(i int) []any {
	row := make([]any, len(f.Columns))
	for j, c := range f.Columns {
		row[j] = c.Values[i]
	}
	return row
}

// ToMap returns the columns keyed by name.
func (f *Frame) ToMap() map[string][]any {
	m := make(map[string][]any, len(f.Columns))
	for _, c := range f.Columns {
		m[c.Name] = slices.Clone(c.Values)
	}
	return m
}

// ParseCell infers a typed value from text: empty → nil, then int64,
// float64, true/false, falling back to the string itself.
func ParseCell(s string) any {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	switch {
	case strings.EqualFold(s, "true"):
		return true
	case strings.EqualFold(s, "false"):
		return false
	}
	return s
}

// FormatCell renders a cell as text. Floats use the shortest exact form.
func FormatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	default:
		return fmt.Sprint(x)
	}
}
