package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment state of a purchase order
type PaymentStatus int

const (
	Paid PaymentStatus = iota
	Pending
)

// String method for PaymentStatus enum
func (s PaymentStatus) String() string {
	switch s {
	case Paid:
		return "Paid"
	case Pending:
		return "Pending"
	default:
		return "Unknown"
	}
}

// PurchaseOrder represents an incoming rollstock shipment
type PurchaseOrder struct {
	Number        string
	Supplier      string
	Rollstock     string
	Width         float64
	Quantity      Quantity
	Cost          decimal.Decimal
	PaymentStatus PaymentStatus
	ShipFrom      string
	ShipTo        string
	OrderDate     time.Time
	LeadTimeWeeks int
}

// Validate checks the purchase order fields
func (po PurchaseOrder) Validate() error {
	if po.Number == "" {
		return fmt.Errorf("po number cannot be empty")
	}
	if po.Supplier == "" {
		return fmt.Errorf("po %s: supplier cannot be empty", po.Number)
	}
	if po.Rollstock == "" {
		return fmt.Errorf("po %s: rollstock cannot be empty", po.Number)
	}
	if po.Quantity <= 0 {
		return fmt.Errorf("po %s: quantity must be positive, got %d", po.Number, po.Quantity)
	}
	if po.Cost.IsNegative() {
		return fmt.Errorf("po %s: cost cannot be negative, got %s", po.Number, po.Cost)
	}
	if po.LeadTimeWeeks < 0 {
		return fmt.Errorf("po %s: lead time cannot be negative, got %d", po.Number, po.LeadTimeWeeks)
	}
	return nil
}

// ArrivalWeek groups the purchase orders arriving in one week
type ArrivalWeek struct {
	Week     int
	TotalQty Quantity
	POs      []PurchaseOrder
}

// NewArrivalWeek creates a validated ArrivalWeek whose total is the sum of its POs
func NewArrivalWeek(week int, pos []PurchaseOrder) (*ArrivalWeek, error) {
	if err := validateWeek(week); err != nil {
		return nil, err
	}

	var total Quantity
	for _, po := range pos {
		if err := po.Validate(); err != nil {
			return nil, err
		}
		total += po.Quantity
	}

	return &ArrivalWeek{
		Week:     week,
		TotalQty: total,
		POs:      pos,
	}, nil
}
