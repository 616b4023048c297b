// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package support

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// A Summary is a description
// of a sample of support values.
type Summary struct {
	// Number of values
	N int

	// Number of values in each tier
	Count map[Tier]int

	Mean   float64
	Median float64

	// 95% empirical interval
	Low  float64
	High float64

	Min float64
	Max float64
}

// Summarize returns the summary of a set of support values.
func Summarize(values []float64) Summary {
	s := Summary{
		N:     len(values),
		Count: make(map[Tier]int, len(names)),
	}
	if len(values) == 0 {
		return s
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	for _, v := range sorted {
		s.Count[TierOf(v)]++
	}

	s.Mean = stat.Mean(sorted, nil)
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.Low = stat.Quantile(0.025, stat.Empirical, sorted, nil)
	s.High = stat.Quantile(0.975, stat.Empirical, sorted, nil)
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	return s
}
