package generator

import (
	"log/slog"
	"math"

	"github.com/vsinha/mockgen/pkg/domain/entities"
	"github.com/vsinha/mockgen/pkg/domain/services"
	"github.com/vsinha/mockgen/pkg/domain/table"
)

const (
	defaultReleaseMean = 80000
	defaultReleaseStd  = 20000
)

// PurchaseSchedule draws one quantity per week from a normal distribution
// shaped like the historical release quantities
func (g *Generator) PurchaseSchedule(orders *table.Table) ([]entities.PurchaseWeek, error) {
	const op = "generator.PurchaseSchedule"
	log := g.log.With(slog.String("op", op))

	mean, std := float64(defaultReleaseMean), float64(defaultReleaseStd)
	if col, ok := releaseQtyColumn.Resolve(orders); ok {
		stats := services.Describe(orders.Floats(col))
		mean, std = stats.MeanOr(mean), stats.StdOr(std)
	} else {
		log.Warn("no release quantity column found, using defaults", slog.String("column", releaseQtyColumn.Primary()))
	}
	log.Debug("release quantity distribution", slog.Float64("mean", mean), slog.Float64("std", std))

	schedule := make([]entities.PurchaseWeek, 0, entities.NumWeeks)
	for w := 1; w <= entities.NumWeeks; w++ {
		draw := mean + std*g.rng.NormFloat64()
		qty := math.Max(0, services.RoundToNearest(draw, 1000))

		pw, err := entities.NewPurchaseWeek(w, entities.Quantity(qty))
		if err != nil {
			return nil, err
		}
		schedule = append(schedule, *pw)
	}

	return schedule, nil
}
