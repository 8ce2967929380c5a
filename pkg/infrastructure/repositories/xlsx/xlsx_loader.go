package xlsx

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"github.com/vsinha/mockgen/pkg/domain/repositories"
	"github.com/vsinha/mockgen/pkg/domain/table"
)

// Loader reads the first worksheet of an xlsx workbook into a table
type Loader struct{}

var _ repositories.WorkbookRepository = (*Loader)(nil)

// NewLoader creates a new xlsx loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the first worksheet of filename. The first row is the header;
// at most maxRows data rows are kept (maxRows <= 0 keeps all). Cells are read
// raw, so dates arrive as Excel serial numbers.
func (l *Loader) Load(filename string, maxRows int) (*table.Table, error) {
	f, err := excelize.OpenFile(filename, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", filename, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no worksheets", filename)
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %s of %s: %w", sheets[0], filename, err)
	}
	defer rows.Close()

	var (
		header    []string
		hasHeader bool
		records   [][]string
	)
	for rows.Next() {
		if hasHeader && maxRows > 0 && len(records) >= maxRows {
			break
		}

		cols, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("workbook %s row %d: %w", filename, len(records)+2, err)
		}
		if isBlank(cols) {
			continue
		}

		if !hasHeader {
			header = cols
			hasHeader = true
			continue
		}
		records = append(records, cols)
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("failed to read workbook %s: %w", filename, err)
	}

	if !hasHeader {
		return nil, fmt.Errorf("workbook %s has no header row", filename)
	}

	return table.New(header, records), nil
}

// LoadWorkbooks reads the orders and inventory workbooks concurrently. The
// inventory workbook is read once in full; Inventory is its first maxRows rows.
func (l *Loader) LoadWorkbooks(ctx context.Context, ordersFile, inventoryFile string, maxRows int) (*repositories.Workbooks, error) {
	var wb repositories.Workbooks

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		wb.Orders, err = l.Load(ordersFile, maxRows)
		if err != nil {
			return fmt.Errorf("orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		wb.InventoryAll, err = l.Load(inventoryFile, 0)
		if err != nil {
			return fmt.Errorf("inventory: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	wb.Inventory = wb.InventoryAll.Head(maxRows)
	return &wb, nil
}

func isBlank(cols []string) bool {
	for _, c := range cols {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
