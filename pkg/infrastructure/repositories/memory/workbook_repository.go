package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/vsinha/mockgen/pkg/domain/repositories"
	"github.com/vsinha/mockgen/pkg/domain/table"
)

// WorkbookRepository serves workbooks registered in memory under their file names
type WorkbookRepository struct {
	tables map[string]*table.Table
	mutex  sync.RWMutex
}

// NewWorkbookRepository creates a new in-memory workbook repository
func NewWorkbookRepository() *WorkbookRepository {
	return &WorkbookRepository{
		tables: make(map[string]*table.Table),
	}
}

// Verify interface compliance
var _ repositories.WorkbookRepository = (*WorkbookRepository)(nil)

// AddWorkbook registers the first worksheet of a workbook under name
func (r *WorkbookRepository) AddWorkbook(name string, t *table.Table) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.tables[name] = t
}

// LoadWorkbooks returns the registered tables, capped like the xlsx loader caps them
func (r *WorkbookRepository) LoadWorkbooks(ctx context.Context, ordersFile, inventoryFile string, maxRows int) (*repositories.Workbooks, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	orders, err := r.get(ordersFile)
	if err != nil {
		return nil, fmt.Errorf("orders: %w", err)
	}
	inventory, err := r.get(inventoryFile)
	if err != nil {
		return nil, fmt.Errorf("inventory: %w", err)
	}

	return &repositories.Workbooks{
		Orders:       orders.Head(maxRows),
		Inventory:    inventory.Head(maxRows),
		InventoryAll: inventory,
	}, nil
}

func (r *WorkbookRepository) get(name string) (*table.Table, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	t, ok := r.tables[name]
	if !ok {
		return nil, fmt.Errorf("workbook %s not found", name)
	}
	return t, nil
}
