package generator

import (
	"log/slog"

	"github.com/vsinha/mockgen/pkg/domain/entities"
	"github.com/vsinha/mockgen/pkg/domain/services"
	"github.com/vsinha/mockgen/pkg/domain/table"
)

const (
	// TopRollstocks is how many categories the extractor keeps
	TopRollstocks = 10

	recentYears = 2
)

// FallbackCombinations is returned when the inventory yields no usable
// rollstock/width data
func FallbackCombinations() []entities.RollstockWidthCombination {
	return []entities.RollstockWidthCombination{
		{Rollstock: "M23", Widths: []float64{70.25, 72.5, 80.0}},
		{Rollstock: "M24", Widths: []float64{70.25, 75.0}},
		{Rollstock: "M25", Widths: []float64{80.0, 85.5}},
	}
}

// ExtractRollstockWidths selects the top rollstocks by volume over the last
// two years and collects their distinct positive widths. Rollstocks without
// widths are dropped; when nothing remains FallbackCombinations is returned.
func (g *Generator) ExtractRollstockWidths(inv *table.Table) []entities.RollstockWidthCombination {
	const op = "generator.ExtractRollstockWidths"
	log := g.log.With(slog.String("op", op))

	if inv == nil {
		log.Warn("no inventory data, using default combinations")
		return FallbackCombinations()
	}

	recent := inv
	if dateCol, ok := orderDateColumn.Resolve(inv); ok {
		cutoff := g.now().AddDate(-recentYears, 0, 0)
		recent = inv.Filter(func(row int) bool {
			d, ok := inv.Time(row, dateCol)
			return ok && !d.Before(cutoff)
		})
		log.Info("filtered inventory to recent records", slog.Int("records", recent.Len()), slog.Time("cutoff", cutoff))
	} else {
		log.Info("no date filter available", slog.Int("records", recent.Len()))
	}

	rollstockCol, ok := rollstockColumn.Resolve(recent)
	if !ok {
		log.Warn("no rollstock column found, using default combinations")
		return FallbackCombinations()
	}
	rollstockOf := func(row int) (string, bool) {
		return recent.Coalesce(row, rollstockCol, rollstockFillColumn)
	}

	qtyCol, hasQty := quantityColumn.Resolve(recent)
	if !hasQty {
		log.Warn("no quantity column found, using record count")
	}

	volumes := make(map[string]float64)
	for row := range recent.Rows {
		name, ok := rollstockOf(row)
		if !ok {
			continue
		}
		if !hasQty {
			volumes[name]++
			continue
		}
		v, _ := recent.Float(row, qtyCol)
		volumes[name] += v
	}

	top := services.TopN(volumes, TopRollstocks)
	for i, name := range top {
		log.Debug("top rollstock", slog.Int("rank", i+1), slog.String("rollstock", name), slog.Float64("volume", volumes[name]))
	}

	observed := make(map[string][]float64)
	if widthCol, ok := widthColumn.Resolve(recent); ok {
		for row := range recent.Rows {
			name, ok := rollstockOf(row)
			if !ok {
				continue
			}
			if w, ok := recent.Float(row, widthCol); ok {
				observed[name] = append(observed[name], w)
			}
		}
	} else {
		log.Warn("no width column found", slog.String("column", widthColumn.Primary()))
	}

	var combos []entities.RollstockWidthCombination
	for _, name := range top {
		widths := services.DistinctPositive(observed[name])
		if len(widths) == 0 {
			continue
		}
		combo, err := entities.NewRollstockWidthCombination(name, widths)
		if err != nil {
			log.Warn("skipping rollstock", slog.String("rollstock", name), slog.String("error", err.Error()))
			continue
		}
		combos = append(combos, *combo)
	}

	if len(combos) == 0 {
		log.Warn("no rollstock/width combinations found, using defaults")
		return FallbackCombinations()
	}
	return combos
}
