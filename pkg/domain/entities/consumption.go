package entities

import (
	"fmt"
	"time"
)

// ConsumptionOrder is a confirmed customer order drawn from a week's demand
type ConsumptionOrder struct {
	ID       string
	Customer string
	Box      string
	Qty      Quantity
	Status   string
	ShipDate time.Time
}

// ConsumptionWeek is one week of demand split into confirmed and expected parts
type ConsumptionWeek struct {
	Week      int
	Total     Quantity
	Confirmed Quantity
	Expected  Quantity
	Orders    []ConsumptionOrder
}

// NewConsumptionWeek creates a validated ConsumptionWeek. Itemized orders may
// not exceed the confirmed quantity.
func NewConsumptionWeek(week int, confirmed, expected Quantity, orders []ConsumptionOrder) (*ConsumptionWeek, error) {
	if err := validateWeek(week); err != nil {
		return nil, err
	}
	if confirmed < 0 {
		return nil, fmt.Errorf("confirmed cannot be negative, got %d", confirmed)
	}
	if expected < 0 {
		return nil, fmt.Errorf("expected cannot be negative, got %d", expected)
	}

	for _, o := range orders {
		if o.ID == "" {
			return nil, fmt.Errorf("order id cannot be empty")
		}
		if o.Qty < 0 {
			return nil, fmt.Errorf("order %s: quantity cannot be negative, got %d", o.ID, o.Qty)
		}
	}

	cw := &ConsumptionWeek{
		Week:      week,
		Total:     confirmed + expected,
		Confirmed: confirmed,
		Expected:  expected,
		Orders:    orders,
	}
	if itemized := cw.ItemizedQty(); itemized > confirmed {
		return nil, fmt.Errorf("itemized orders %d exceed confirmed %d", itemized, confirmed)
	}
	return cw, nil
}

// ItemizedQty returns the sum of the week's order quantities
func (w ConsumptionWeek) ItemizedQty() Quantity {
	var sum Quantity
	for _, o := range w.Orders {
		sum += o.Qty
	}
	return sum
}
