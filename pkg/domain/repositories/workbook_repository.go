package repositories

import (
	"context"

	"github.com/vsinha/mockgen/pkg/domain/table"
)

// Workbooks are the source tables the generator samples from
type Workbooks struct {
	// Orders is capped at the requested row count
	Orders *table.Table
	// Inventory is the first rows of InventoryAll, capped like Orders
	Inventory *table.Table
	// InventoryAll is never capped
	InventoryAll *table.Table
}

// WorkbookRepository provides access to the orders and inventory workbooks
type WorkbookRepository interface {
	LoadWorkbooks(ctx context.Context, ordersFile, inventoryFile string, maxRows int) (*Workbooks, error)
}
