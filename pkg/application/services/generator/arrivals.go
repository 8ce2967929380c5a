package generator

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/vsinha/mockgen/pkg/domain/entities"
	"github.com/vsinha/mockgen/pkg/domain/table"
)

const (
	firstArrivalWeek     = 3
	noArrivalProbability = 0.3
	paidProbability      = 0.6
	firstPONumber        = 12345
	maxVendors           = 5
	minPOQty             = 30000
	maxPOQty             = 100000
	poLeadTimeWeeks      = 2
	shipTo               = "PSC Warehouse A"
)

var (
	defaultVendors  = []string{"Acme Paper Co.", "Beta Materials Inc.", "Clearwater Paper"}
	defaultUnitCost = decimal.RequireFromString("0.50")
	shipOrigins     = []string{"Cleveland, OH", "Chicago, IL", "Memphis, TN"}
)

// Arrivals generates the weekly incoming purchase orders. Weeks before
// firstArrivalWeek are always empty.
func (g *Generator) Arrivals(inv *table.Table, combos []entities.RollstockWidthCombination) ([]entities.ArrivalWeek, error) {
	const op = "generator.Arrivals"
	log := g.log.With(slog.String("op", op))

	pairs := entities.FlattenCombinations(combos)
	if len(pairs) == 0 {
		return nil, fmt.Errorf("no rollstock/width combinations to draw from")
	}

	vendors := g.vendors(inv, log)
	unitCost := g.unitCost(inv, log)

	arrivals := make([]entities.ArrivalWeek, 0, entities.NumWeeks)
	poNumber := firstPONumber

	for w := 1; w <= entities.NumWeeks; w++ {
		var pos []entities.PurchaseOrder

		if w >= firstArrivalWeek && g.rng.Float64() >= noArrivalProbability {
			count := randInt(g.rng, 1, 3)
			pos = make([]entities.PurchaseOrder, 0, count)

			for i := 0; i < count; i++ {
				qty := roundThousand(randInt(g.rng, minPOQty, maxPOQty))
				pair := pairs[g.rng.Intn(len(pairs))]
				supplier := vendors[g.rng.Intn(len(vendors))]
				status := entities.Pending
				if g.rng.Float64() < paidProbability {
					status = entities.Paid
				}
				origin := shipOrigins[g.rng.Intn(len(shipOrigins))]

				pos = append(pos, entities.PurchaseOrder{
					Number:        fmt.Sprintf("PO-%d", poNumber),
					Supplier:      supplier,
					Rollstock:     pair.Rollstock,
					Width:         pair.Width,
					Quantity:      qty,
					Cost:          decimal.NewFromInt(int64(qty)).Mul(unitCost).Round(2),
					PaymentStatus: status,
					ShipFrom:      origin,
					ShipTo:        shipTo,
					OrderDate:     g.weeksFromBase(w - 2),
					LeadTimeWeeks: poLeadTimeWeeks,
				})
				poNumber++
			}
		}

		aw, err := entities.NewArrivalWeek(w, pos)
		if err != nil {
			return nil, fmt.Errorf("week %d: %w", w, err)
		}
		if aw.POs == nil {
			aw.POs = []entities.PurchaseOrder{}
		}
		arrivals = append(arrivals, *aw)
	}

	return arrivals, nil
}

func (g *Generator) vendors(inv *table.Table, log *slog.Logger) []string {
	if col, ok := vendorColumn.Resolve(inv); ok {
		if vendors := inv.Distinct(col, maxVendors); len(vendors) > 0 {
			return vendors
		}
	}
	log.Warn("no vendor names found, using defaults")
	return defaultVendors
}

func (g *Generator) unitCost(inv *table.Table, log *slog.Logger) decimal.Decimal {
	col, ok := unitCostColumn.Resolve(inv)
	if !ok {
		log.Warn("no unit cost column found, using default", slog.String("unit_cost", defaultUnitCost.String()))
		return defaultUnitCost
	}

	values := inv.Floats(col)
	if len(values) == 0 {
		return defaultUnitCost
	}
	costs := make([]decimal.Decimal, len(values))
	for i, v := range values {
		costs[i] = decimal.NewFromFloat(v)
	}
	return decimal.Avg(costs[0], costs[1:]...)
}
