package testing

import (
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/vsinha/mockgen/pkg/domain/table"
	"github.com/vsinha/mockgen/pkg/infrastructure/repositories/memory"
)

// Workbook file names registered by the builders
const (
	OrdersFile    = "orders.xlsx"
	InventoryFile = "inventory.xlsx"
)

// DemoInventory builds an inventory sheet with four rollstocks received
// within the last year, plus one stale row older than two years
func DemoInventory(now time.Time) *table.Table {
	header := []string{"PO_Order_Date", "Corr_RS_Desc", "RS_desc", "Qty_Recieved", "Avg_Width", "Vendor_name", "avg_Cost_per_item_Recieved"}
	var rows [][]string

	recent := now.AddDate(0, -3, 0).Format(time.DateOnly)
	for i := 0; i < 30; i++ {
		rows = append(rows, []string{
			recent,
			fmt.Sprintf("M%d", 20+i%4),
			"",
			strconv.Itoa(1000 * (i + 1)),
			strconv.FormatFloat(60+float64(i%5)*2.5, 'f', -1, 64),
			fmt.Sprintf("Vendor %d", i%3),
			"0.45",
		})
	}

	// filled from RS_desc, outside the two-year window
	stale := now.AddDate(-3, 0, 0).Format(time.DateOnly)
	rows = append(rows, []string{stale, "", "OLD1", "999999", "99.5", "Vendor 9", "9.99"})

	return table.New(header, rows)
}

// DemoOrders builds an orders sheet with release quantities and six customers
func DemoOrders() *table.Table {
	var rows [][]string
	for i := 0; i < 20; i++ {
		rows = append(rows, []string{strconv.Itoa(70000 + i*500), fmt.Sprintf("CUST%02d", i%6)})
	}
	return table.New([]string{"RELEASE_QTY", "CSCODE"}, rows)
}

// BuildDemoWorkbooks registers DemoOrders and DemoInventory in a memory repository
func BuildDemoWorkbooks(now time.Time) *memory.WorkbookRepository {
	repo := memory.NewWorkbookRepository()
	repo.AddWorkbook(OrdersFile, DemoOrders())
	repo.AddWorkbook(InventoryFile, DemoInventory(now))
	return repo
}

// BuildBareWorkbooks registers sheets that lack every optional column, so
// each generator falls back to its defaults
func BuildBareWorkbooks() *memory.WorkbookRepository {
	repo := memory.NewWorkbookRepository()
	repo.AddWorkbook(OrdersFile, table.New([]string{"ORDER_NO"}, [][]string{{"1"}, {"2"}}))
	repo.AddWorkbook(InventoryFile, table.New([]string{"PART"}, [][]string{{"A"}, {"B"}}))
	return repo
}

// WriteWorkbook saves t as the first worksheet of an xlsx file. Cells that
// parse as numbers are written as numbers.
func WriteWorkbook(path string, t *table.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for col, name := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}

	for r, row := range t.Rows {
		for col, raw := range row {
			if raw == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return err
			}
			var value any = raw
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				value = v
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}
