package services

import (
	"math"
	"testing"
)

func TestDescribe(t *testing.T) {
	s := Describe([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if s.Count != 8 {
		t.Errorf("Expected count 8, got %d", s.Count)
	}
	if s.Mean != 5 {
		t.Errorf("Expected mean 5, got %v", s.Mean)
	}
	// sample std of the classic population-std-2 series
	if math.Abs(s.Std-2.138089935299395) > 1e-12 {
		t.Errorf("Expected sample std 2.1380899, got %v", s.Std)
	}
}

func TestDescribe_UndefinedStatistics(t *testing.T) {
	empty := Describe(nil)
	if empty.MeanOr(80000) != 80000 || empty.StdOr(20000) != 20000 {
		t.Errorf("Expected defaults for empty sample, got %+v", empty)
	}

	single := Describe([]float64{42000})
	if single.MeanOr(80000) != 42000 {
		t.Errorf("Expected mean 42000, got %v", single.MeanOr(80000))
	}
	if single.StdOr(20000) != 20000 {
		t.Errorf("Expected default std for single value, got %v", single.StdOr(20000))
	}
}

func TestRoundToNearest(t *testing.T) {
	testCases := []struct {
		in       float64
		expected float64
	}{
		{30499, 30000},
		{30501, 31000},
		{30500, 30000},
		{31500, 32000},
		{-400, 0},
		{99999, 100000},
	}
	for _, tc := range testCases {
		if got := RoundToNearest(tc.in, 1000); got != tc.expected {
			t.Errorf("RoundToNearest(%v): expected %v, got %v", tc.in, tc.expected, got)
		}
	}
}

func TestTopN(t *testing.T) {
	volumes := map[string]float64{
		"M25": 10,
		"M23": 50,
		"M24": 10,
		"M21": 10,
		"M30": 1,
	}

	got := TopN(volumes, 3)
	expected := []string{"M23", "M21", "M24"}
	if len(got) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Position %d: expected %s, got %s", i, expected[i], got[i])
		}
	}

	if all := TopN(volumes, 10); len(all) != 5 {
		t.Errorf("Expected all 5 keys, got %d", len(all))
	}
}

func TestDistinctPositive(t *testing.T) {
	got := DistinctPositive([]float64{80, 0, 70.25, -3, 72.5, 80, 70.25})
	expected := []float64{70.25, 72.5, 80}
	if len(got) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Position %d: expected %v, got %v", i, expected[i], got[i])
		}
	}
}
