package generator

import (
	"github.com/vsinha/mockgen/pkg/domain/entities"
)

const (
	baseInventory   = 120000
	inventoryTrend  = 5000
	inventorySpread = 15000
)

// InventoryProjection returns a linear upward trend with a fixed symmetric band
func (g *Generator) InventoryProjection() ([]entities.InventoryWeek, error) {
	projection := make([]entities.InventoryWeek, 0, entities.NumWeeks)
	for w := 1; w <= entities.NumWeeks; w++ {
		median := entities.Quantity(baseInventory + w*inventoryTrend)

		iw, err := entities.NewInventoryWeek(w, median-inventorySpread, median, median+inventorySpread)
		if err != nil {
			return nil, err
		}
		projection = append(projection, *iw)
	}
	return projection, nil
}
