package statistics

import (
	gomath "math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a set of calculation results
type Summary struct {
	Count  int     `json:"count" yaml:"count"`
	Sum    float64 `json:"sum" yaml:"sum"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Stdev  float64 `json:"stdev" yaml:"stdev"`
	// Skipped counts non-finite values left out of the summary
	Skipped int `json:"skipped" yaml:"skipped"`
}

// Summarize computes descriptive statistics over the finite values.
// An empty input yields the zero Summary.
func Summarize(values []float64) Summary {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if gomath.IsNaN(v) || gomath.IsInf(v, 0) {
			continue
		}
		finite = append(finite, v)
	}

	s := Summary{Count: len(finite), Skipped: len(values) - len(finite)}
	if len(finite) == 0 {
		return s
	}

	sorted := make([]float64, len(finite))
	copy(sorted, finite)
	sort.Float64s(sorted)

	s.Sum = floats.Sum(finite)
	s.Mean = stat.Mean(finite, nil)
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.Min = floats.Min(finite)
	s.Max = floats.Max(finite)
	if len(finite) > 1 {
		s.Stdev = stat.StdDev(finite, nil)
	}
	return s
}
