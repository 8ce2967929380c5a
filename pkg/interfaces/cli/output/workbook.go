package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vsinha/mockgen/pkg/application/dto"
)

// sheet is one collection flattened into rows
type sheet struct {
	name    string
	headers []string
	rows    [][]any
}

func encodeWorkbook(doc *dto.MockData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, s := range sheets(doc) {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return nil, fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return nil, fmt.Errorf("failed to add sheet %s: %w", s.name, err)
		}

		if err := writeSheet(f, s, headerStyle); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", s.name, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, s sheet, headerStyle int) error {
	for col, name := range s.headers {
		if err := f.SetCellValue(s.name, cellName(col+1, 1), name); err != nil {
			return err
		}
	}

	lastCol := cellName(len(s.headers), 1)
	if err := f.SetCellStyle(s.name, "A1", lastCol, headerStyle); err != nil {
		return err
	}

	for r, row := range s.rows {
		if err := f.SetSheetRow(s.name, cellName(1, r+2), &row); err != nil {
			return err
		}
	}

	if err := f.SetPanes(s.name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
	}); err != nil {
		return err
	}

	lastColName, _, err := excelize.SplitCellName(lastCol)
	if err != nil {
		return err
	}
	return f.SetColWidth(s.name, "A", lastColName, 15)
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// sheets flattens the nested collections: one row per width, PO and order
func sheets(doc *dto.MockData) []sheet {
	combos := sheet{name: dto.RollstockWidthCombinationsKey, headers: []string{"rollstock", "width"}}
	for _, c := range doc.RollstockWidthCombinations {
		for _, w := range c.Widths {
			combos.rows = append(combos.rows, []any{c.Rollstock, w})
		}
	}

	purchase := sheet{name: dto.PurchaseScheduleKey, headers: []string{"week", "currentQty", "recommendedQty"}}
	for _, p := range doc.PurchaseSchedule {
		purchase.rows = append(purchase.rows, []any{p.Week, p.CurrentQty, p.RecommendedQty})
	}

	inventory := sheet{name: dto.InventoryProjectionKey, headers: []string{"week", "p10", "p50", "p90"}}
	for _, w := range doc.InventoryProjection {
		inventory.rows = append(inventory.rows, []any{w.Week, w.P10, w.P50, w.P90})
	}

	arrivals := sheet{name: dto.ArrivalsKey, headers: []string{
		"week", "totalQty", "po_number", "supplier", "rollstock", "width", "quantity_lf",
		"cost", "payment_status", "ship_from", "ship_to", "order_date", "lead_time_weeks",
	}}
	for _, a := range doc.Arrivals {
		if len(a.POs) == 0 {
			arrivals.rows = append(arrivals.rows, []any{a.Week, a.TotalQty})
			continue
		}
		for _, po := range a.POs {
			arrivals.rows = append(arrivals.rows, []any{
				a.Week, a.TotalQty, po.PONumber, po.Supplier, po.Rollstock, po.Width, po.QuantityLF,
				po.Cost, po.PaymentStatus, po.ShipFrom, po.ShipTo, po.OrderDate, po.LeadTimeWeeks,
			})
		}
	}

	consumption := sheet{name: dto.ConsumptionKey, headers: []string{
		"week", "total", "confirmed", "expected", "id", "customer", "box", "qty", "status", "shipDate",
	}}
	for _, c := range doc.Consumption {
		if len(c.Orders) == 0 {
			consumption.rows = append(consumption.rows, []any{c.Week, c.Total, c.Confirmed, c.Expected})
			continue
		}
		for _, o := range c.Orders {
			consumption.rows = append(consumption.rows, []any{
				c.Week, c.Total, c.Confirmed, c.Expected, o.ID, o.Customer, o.Box, o.Qty, o.Status, o.ShipDate,
			})
		}
	}

	return []sheet{combos, purchase, inventory, arrivals, consumption}
}
