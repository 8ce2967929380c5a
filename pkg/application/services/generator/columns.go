package generator

import "github.com/vsinha/mockgen/pkg/domain/table"

// Column fallbacks, highest priority first. A resolver that finds nothing
// falls back to the documented default of the generator using it.
var (
	// inventory: no date filter when absent
	orderDateColumn = table.Resolver{Name: "order date", Candidates: []string{"PO_Order_Date"}}

	// inventory: blank primary cells are filled from rollstockFillColumn
	rollstockColumn     = table.Resolver{Name: "rollstock", Candidates: []string{"Corr_RS_Desc", "RS_desc"}}
	rollstockFillColumn = "RS_desc"

	// inventory: rows are counted when absent
	quantityColumn = table.Resolver{Name: "quantity", Candidates: []string{"Qty_Recieved", "Qty_Ordered", "Expected_Incoming_qty"}}

	// inventory: fallback combinations when absent
	widthColumn = table.Resolver{Name: "width", Candidates: []string{"Avg_Width"}}

	// inventory: defaultVendors when absent
	vendorColumn = table.Resolver{Name: "vendor", Candidates: []string{"Vendor_name"}}

	// inventory: defaultUnitCost when absent
	unitCostColumn = table.Resolver{Name: "unit cost", Candidates: []string{"avg_Cost_per_item_Recieved"}}

	// orders: defaultReleaseMean / defaultReleaseStd when absent
	releaseQtyColumn = table.Resolver{Name: "release quantity", Candidates: []string{"RELEASE_QTY"}}

	// orders: defaultCustomers when absent
	customerColumn = table.Resolver{Name: "customer", Candidates: []string{"CSCODE"}}
)
