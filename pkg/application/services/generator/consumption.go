package generator

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/vsinha/mockgen/pkg/domain/entities"
	"github.com/vsinha/mockgen/pkg/domain/table"
)

const (
	minWeeklyDemand   = 60000
	maxWeeklyDemand   = 120000
	minConfirmedShare = 0.70
	maxConfirmedShare = 0.85
	itemizedWeeks     = 5
	minItemQty        = 10000
	maxItemQty        = 50000
	maxCustomers      = 10
	confirmedStatus   = "Confirmed"
)

var defaultCustomers = []string{"ABC Corp", "XYZ Ltd", "Acme Industries", "GlobalTech", "MegaCorp"}

// Consumption generates weekly demand split into confirmed and expected parts.
// The first itemizedWeeks weeks break the confirmed part into 2-3 orders
// whose quantities sum to it exactly.
func (g *Generator) Consumption(orders *table.Table) ([]entities.ConsumptionWeek, error) {
	const op = "generator.Consumption"
	log := g.log.With(slog.String("op", op))

	customers := g.customers(orders, log)

	consumption := make([]entities.ConsumptionWeek, 0, entities.NumWeeks)
	orderNumber := 1

	for w := 1; w <= entities.NumWeeks; w++ {
		total := roundThousand(randInt(g.rng, minWeeklyDemand, maxWeeklyDemand))
		share := uniform(g.rng, minConfirmedShare, maxConfirmedShare)
		confirmed := entities.Quantity(math.Floor(float64(total) * share))
		expected := total - confirmed

		items := []entities.ConsumptionOrder{}
		if w <= itemizedWeeks {
			count := randInt(g.rng, 2, 4)
			remaining := confirmed

			for i := 0; i < count; i++ {
				qty := remaining
				last := i == count-1
				if !last {
					// the ceiling shrinks with the remainder; once it no longer
					// clears the minimum this item takes everything left
					ceiling := min(maxItemQty, int(remaining))
					if ceiling > minItemQty {
						qty = min(roundThousand(randInt(g.rng, minItemQty, ceiling)), remaining)
					} else {
						last = true
					}
				}
				remaining -= qty

				items = append(items, entities.ConsumptionOrder{
					ID:       fmt.Sprintf("ORD-%03d", orderNumber),
					Customer: customers[g.rng.Intn(len(customers))],
					Box:      fmt.Sprintf("Box %d", randInt(g.rng, 2, 8)),
					Qty:      qty,
					Status:   confirmedStatus,
					ShipDate: g.weeksFromBase(w),
				})
				orderNumber++

				if last {
					break
				}
			}
		}

		cw, err := entities.NewConsumptionWeek(w, confirmed, expected, items)
		if err != nil {
			return nil, fmt.Errorf("week %d: %w", w, err)
		}
		consumption = append(consumption, *cw)
	}

	return consumption, nil
}

func (g *Generator) customers(orders *table.Table, log *slog.Logger) []string {
	if col, ok := customerColumn.Resolve(orders); ok {
		if customers := orders.Distinct(col, maxCustomers); len(customers) > 0 {
			return customers
		}
	}
	log.Warn("no customer codes found, using defaults")
	return defaultCustomers
}
