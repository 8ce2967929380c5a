package entities

import "fmt"

// InventoryWeek is one week of the projected inventory band
type InventoryWeek struct {
	Week   int
	Low    Quantity
	Median Quantity
	High   Quantity
}

// NewInventoryWeek creates a validated InventoryWeek
func NewInventoryWeek(week int, low, median, high Quantity) (*InventoryWeek, error) {
	if err := validateWeek(week); err != nil {
		return nil, err
	}
	if low > median {
		return nil, fmt.Errorf("low %d cannot exceed median %d", low, median)
	}
	if median > high {
		return nil, fmt.Errorf("median %d cannot exceed high %d", median, high)
	}

	return &InventoryWeek{
		Week:   week,
		Low:    low,
		Median: median,
		High:   high,
	}, nil
}
