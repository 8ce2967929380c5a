package entities

import "testing"

func TestRollstockWidthCombination_Validation(t *testing.T) {
	combo, err := NewRollstockWidthCombination("M23", []float64{70.25, 72.5, 80})
	if err != nil {
		t.Fatalf("Expected valid combination creation to succeed: %v", err)
	}
	if len(combo.Widths) != 3 {
		t.Errorf("Expected 3 widths, got %d", len(combo.Widths))
	}

	testCases := []struct {
		name        string
		rollstock   string
		widths      []float64
		expectError string
	}{
		{"empty rollstock", "", []float64{70}, "rollstock cannot be empty"},
		{"no widths", "M23", nil, "rollstock M23 has no widths"},
		{"zero width", "M23", []float64{0, 70}, "width must be positive, got 0"},
		{"negative width", "M23", []float64{-1}, "width must be positive, got -1"},
		{"descending", "M23", []float64{80, 70.25}, "widths must be strictly ascending, got 70.25 after 80"},
		{"duplicate", "M23", []float64{70.25, 70.25}, "widths must be strictly ascending, got 70.25 after 70.25"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRollstockWidthCombination(tc.rollstock, tc.widths)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestFlattenCombinations(t *testing.T) {
	pairs := FlattenCombinations([]RollstockWidthCombination{
		{Rollstock: "M23", Widths: []float64{70.25, 72.5}},
		{Rollstock: "M25", Widths: []float64{80}},
	})

	expected := []RollstockWidth{
		{"M23", 70.25},
		{"M23", 72.5},
		{"M25", 80},
	}
	if len(pairs) != len(expected) {
		t.Fatalf("Expected %d pairs, got %d", len(expected), len(pairs))
	}
	for i := range expected {
		if pairs[i] != expected[i] {
			t.Errorf("Pair %d: expected %+v, got %+v", i, expected[i], pairs[i])
		}
	}
}
