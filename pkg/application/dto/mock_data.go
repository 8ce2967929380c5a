package dto

import (
	"github.com/vsinha/mockgen/pkg/domain/entities"
)

const dateLayout = "2006-01-02"

// Collection keys of the demo document
const (
	RollstockWidthCombinationsKey = "rollstockWidthCombinations"
	PurchaseScheduleKey           = "purchaseSchedule"
	InventoryProjectionKey        = "inventoryProjection"
	ArrivalsKey                   = "arrivals"
	ConsumptionKey                = "consumption"
)

// CollectionKeys lists the document's top-level keys in output order
var CollectionKeys = []string{
	RollstockWidthCombinationsKey,
	PurchaseScheduleKey,
	InventoryProjectionKey,
	ArrivalsKey,
	ConsumptionKey,
}

// MockData is the demo document written to disk and served to the front-end
type MockData struct {
	RollstockWidthCombinations []RollstockWidths `json:"rollstockWidthCombinations"`
	PurchaseSchedule           []PurchaseWeek    `json:"purchaseSchedule"`
	InventoryProjection        []InventoryWeek   `json:"inventoryProjection"`
	Arrivals                   []ArrivalWeek     `json:"arrivals"`
	Consumption                []ConsumptionWeek `json:"consumption"`
}

type RollstockWidths struct {
	Rollstock string    `json:"rollstock"`
	Widths    []float64 `json:"widths"`
}

type PurchaseWeek struct {
	Week           int   `json:"week"`
	CurrentQty     int64 `json:"currentQty"`
	RecommendedQty int64 `json:"recommendedQty"`
}

type InventoryWeek struct {
	Week int   `json:"week"`
	P10  int64 `json:"p10"`
	P50  int64 `json:"p50"`
	P90  int64 `json:"p90"`
}

type ArrivalWeek struct {
	Week     int             `json:"week"`
	TotalQty int64           `json:"totalQty"`
	POs      []PurchaseOrder `json:"pos"`
}

type PurchaseOrder struct {
	PONumber      string  `json:"po_number"`
	Supplier      string  `json:"supplier"`
	Rollstock     string  `json:"rollstock"`
	Width         float64 `json:"width"`
	QuantityLF    int64   `json:"quantity_lf"`
	Cost          float64 `json:"cost"`
	PaymentStatus string  `json:"payment_status"`
	ShipFrom      string  `json:"ship_from"`
	ShipTo        string  `json:"ship_to"`
	OrderDate     string  `json:"order_date"`
	LeadTimeWeeks int     `json:"lead_time_weeks"`
}

type ConsumptionWeek struct {
	Week      int                `json:"week"`
	Total     int64              `json:"total"`
	Confirmed int64              `json:"confirmed"`
	Expected  int64              `json:"expected"`
	Orders    []ConsumptionOrder `json:"orders"`
}

type ConsumptionOrder struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Box      string `json:"box"`
	Qty      int64  `json:"qty"`
	Status   string `json:"status"`
	ShipDate string `json:"shipDate"`
}

// NewMockData merges the generated collections into the wire document,
// converting quantities to plain integers, costs to floats and dates to
// YYYY-MM-DD strings
func NewMockData(
	combos []entities.RollstockWidthCombination,
	purchases []entities.PurchaseWeek,
	inventory []entities.InventoryWeek,
	arrivals []entities.ArrivalWeek,
	consumption []entities.ConsumptionWeek,
) *MockData {
	doc := &MockData{
		RollstockWidthCombinations: make([]RollstockWidths, 0, len(combos)),
		PurchaseSchedule:           make([]PurchaseWeek, 0, len(purchases)),
		InventoryProjection:        make([]InventoryWeek, 0, len(inventory)),
		Arrivals:                   make([]ArrivalWeek, 0, len(arrivals)),
		Consumption:                make([]ConsumptionWeek, 0, len(consumption)),
	}

	for _, c := range combos {
		doc.RollstockWidthCombinations = append(doc.RollstockWidthCombinations, RollstockWidths{
			Rollstock: c.Rollstock,
			Widths:    append([]float64{}, c.Widths...),
		})
	}

	for _, p := range purchases {
		doc.PurchaseSchedule = append(doc.PurchaseSchedule, PurchaseWeek{
			Week:           p.Week,
			CurrentQty:     int64(p.CurrentQty),
			RecommendedQty: int64(p.RecommendedQty),
		})
	}

	for _, w := range inventory {
		doc.InventoryProjection = append(doc.InventoryProjection, InventoryWeek{
			Week: w.Week,
			P10:  int64(w.Low),
			P50:  int64(w.Median),
			P90:  int64(w.High),
		})
	}

	for _, a := range arrivals {
		week := ArrivalWeek{
			Week:     a.Week,
			TotalQty: int64(a.TotalQty),
			POs:      make([]PurchaseOrder, 0, len(a.POs)),
		}
		for _, po := range a.POs {
			week.POs = append(week.POs, PurchaseOrder{
				PONumber:      po.Number,
				Supplier:      po.Supplier,
				Rollstock:     po.Rollstock,
				Width:         po.Width,
				QuantityLF:    int64(po.Quantity),
				Cost:          po.Cost.Round(2).InexactFloat64(),
				PaymentStatus: po.PaymentStatus.String(),
				ShipFrom:      po.ShipFrom,
				ShipTo:        po.ShipTo,
				OrderDate:     po.OrderDate.Format(dateLayout),
				LeadTimeWeeks: po.LeadTimeWeeks,
			})
		}
		doc.Arrivals = append(doc.Arrivals, week)
	}

	for _, c := range consumption {
		week := ConsumptionWeek{
			Week:      c.Week,
			Total:     int64(c.Total),
			Confirmed: int64(c.Confirmed),
			Expected:  int64(c.Expected),
			Orders:    make([]ConsumptionOrder, 0, len(c.Orders)),
		}
		for _, o := range c.Orders {
			week.Orders = append(week.Orders, ConsumptionOrder{
				ID:       o.ID,
				Customer: o.Customer,
				Box:      o.Box,
				Qty:      int64(o.Qty),
				Status:   o.Status,
				ShipDate: o.ShipDate.Format(dateLayout),
			})
		}
		doc.Consumption = append(doc.Consumption, week)
	}

	return doc
}

// TotalPOs counts purchase orders across all arrival weeks
func (d *MockData) TotalPOs() int {
	n := 0
	for _, w := range d.Arrivals {
		n += len(w.POs)
	}
	return n
}

// TotalOrders counts consumption orders across all weeks
func (d *MockData) TotalOrders() int {
	n := 0
	for _, w := range d.Consumption {
		n += len(w.Orders)
	}
	return n
}

// Collection returns the named top-level collection
func (d *MockData) Collection(key string) (any, bool) {
	switch key {
	case RollstockWidthCombinationsKey:
		return d.RollstockWidthCombinations, true
	case PurchaseScheduleKey:
		return d.PurchaseSchedule, true
	case InventoryProjectionKey:
		return d.InventoryProjection, true
	case ArrivalsKey:
		return d.Arrivals, true
	case ConsumptionKey:
		return d.Consumption, true
	default:
		return nil, false
	}
}
