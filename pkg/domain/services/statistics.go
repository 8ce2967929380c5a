package services

import (
	"math"
	"sort"
)

// Summary holds the descriptive statistics of a numeric column. Mean is NaN
// for an empty sample and Std is NaN for fewer than two values.
type Summary struct {
	Count int
	Mean  float64
	Std   float64
}

// Describe computes the count, mean and sample standard deviation (n-1)
func Describe(values []float64) Summary {
	s := Summary{Count: len(values), Mean: math.NaN(), Std: math.NaN()}
	if len(values) == 0 {
		return s
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	s.Mean = sum / float64(len(values))

	if len(values) < 2 {
		return s
	}
	var sq float64
	for _, v := range values {
		d := v - s.Mean
		sq += d * d
	}
	s.Std = math.Sqrt(sq / float64(len(values)-1))
	return s
}

// MeanOr returns the mean, or fallback when it is undefined
func (s Summary) MeanOr(fallback float64) float64 {
	if math.IsNaN(s.Mean) {
		return fallback
	}
	return s.Mean
}

// StdOr returns the standard deviation, or fallback when it is undefined
func (s Summary) StdOr(fallback float64) float64 {
	if math.IsNaN(s.Std) {
		return fallback
	}
	return s.Std
}

// RoundToNearest rounds v to the nearest multiple of step, halves to even
func RoundToNearest(v, step float64) float64 {
	return math.RoundToEven(v/step) * step
}

// TopN returns up to n keys ordered by value descending. Equal values keep
// ascending key order so the result is stable for the same input.
func TopN(volumes map[string]float64, n int) []string {
	keys := make([]string, 0, len(volumes))
	for k := range volumes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	sort.SliceStable(keys, func(i, j int) bool {
		return volumes[keys[i]] > volumes[keys[j]]
	})
	if n >= 0 && len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

// DistinctPositive returns the distinct strictly positive values in ascending order
func DistinctPositive(values []float64) []float64 {
	seen := make(map[float64]bool)
	var out []float64
	for _, v := range values {
		if v <= 0 || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}
