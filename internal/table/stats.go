package table

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics for one numeric column.
type Summary struct {
	Name   string  `json:"name" yaml:"name"`
	Count  int     `json:"count" yaml:"count"`
	Nulls  int     `json:"nulls" yaml:"nulls"`
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"std" yaml:"std"`
	Min    float64 `json:"min" yaml:"min"`
	Median float64 `json:"median" yaml:"median"`
	Max    float64 `json:"max" yaml:"max"`
}

// Describe summarizes every column whose non-null cells are all numeric.
// Columns with text or bool cells, or with no values at all, are skipped.
func (f *Frame) Describe() []Summary {
	var out []Summary
	for _, col := range f.Columns {
		xs, nulls, ok := numeric(col.Values)
		if !ok || len(xs) == 0 {
			continue
		}
		slices.Sort(xs)

		s := Summary{
			Name:   col.Name,
			Count:  len(xs),
			Nulls:  nulls,
			Mean:   stat.Mean(xs, nil),
			Min:    xs[0],
			Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
			Max:    xs[len(xs)-1],
		}
		if len(xs) > 1 {
			s.StdDev = stat.StdDev(xs, nil)
		} else {
			s.StdDev = math.NaN()
		}
		out = append(out, s)
	}
	return out
}

func numeric(values []any) ([]float64, int, bool) {
	xs := make([]float64, 0, len(values))
	nulls := 0
	for _, v := range values {
		switch n := v.(type) {
		case nil:
			nulls++
		case int:
			xs = append(xs, float64(n))
		case int32:
			xs = append(xs, float64(n))
		case int64:
			xs = append(xs, float64(n))
		case uint64:
			xs = append(xs, float64(n))
		case float32:
			xs = append(xs, float64(n))
		case float64:
			xs = append(xs, n)
		default:
			return nil, 0, false
		}
	}
	return xs, nulls, true
}
