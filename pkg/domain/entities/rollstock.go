package entities

import "fmt"

// RollstockWidthCombination lists the observed widths of one rollstock category
type RollstockWidthCombination struct {
	Rollstock string
	Widths    []float64
}

// NewRollstockWidthCombination creates a validated RollstockWidthCombination.
// Widths must be strictly positive and strictly ascending.
func NewRollstockWidthCombination(rollstock string, widths []float64) (*RollstockWidthCombination, error) {
	if rollstock == "" {
		return nil, fmt.Errorf("rollstock cannot be empty")
	}
	if len(widths) == 0 {
		return nil, fmt.Errorf("rollstock %s has no widths", rollstock)
	}
	for i, w := range widths {
		if w <= 0 {
			return nil, fmt.Errorf("width must be positive, got %v", w)
		}
		if i > 0 && w <= widths[i-1] {
			return nil, fmt.Errorf("widths must be strictly ascending, got %v after %v", w, widths[i-1])
		}
	}

	return &RollstockWidthCombination{
		Rollstock: rollstock,
		Widths:    append([]float64(nil), widths...),
	}, nil
}

// RollstockWidth is a single (rollstock, width) pair
type RollstockWidth struct {
	Rollstock string
	Width     float64
}

// FlattenCombinations expands combinations into (rollstock, width) pairs,
// preserving combination order and width order
func FlattenCombinations(combos []RollstockWidthCombination) []RollstockWidth {
	var pairs []RollstockWidth
	for _, c := range combos {
		for _, w := range c.Widths {
			pairs = append(pairs, RollstockWidth{Rollstock: c.Rollstock, Width: w})
		}
	}
	return pairs
}
