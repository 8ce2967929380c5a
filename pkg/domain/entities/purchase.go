package entities

import "fmt"

// PurchaseWeek is one week of the purchase schedule
type PurchaseWeek struct {
	Week           int
	CurrentQty     Quantity
	RecommendedQty Quantity
}

// NewPurchaseWeek creates a validated PurchaseWeek. The recommendation starts
// out equal to the current quantity.
func NewPurchaseWeek(week int, qty Quantity) (*PurchaseWeek, error) {
	if err := validateWeek(week); err != nil {
		return nil, err
	}
	if qty < 0 {
		return nil, fmt.Errorf("quantity cannot be negative, got %d", qty)
	}

	return &PurchaseWeek{
		Week:           week,
		CurrentQty:     qty,
		RecommendedQty: qty,
	}, nil
}
