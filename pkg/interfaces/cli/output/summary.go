package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vsinha/mockgen/pkg/application/dto"
)

// PrintSummary reports the written file and the size of each collection
func PrintSummary(w io.Writer, doc *dto.MockData, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat output %s: %w", path, err)
	}

	rule := strings.Repeat("=", 70)
	fmt.Fprintf(w, "\n%s\n✨ Mock data generation complete!\n%s\n", rule, rule)
	fmt.Fprintf(w, "\n📁 Output file: %s\n", path)
	fmt.Fprintf(w, "📊 File size: %.1f KB\n", float64(info.Size())/1024)
	fmt.Fprintf(w, "\n📈 Data summary:\n")
	fmt.Fprintf(w, "  - Rollstock combinations: %d\n", len(doc.RollstockWidthCombinations))
	fmt.Fprintf(w, "  - Purchase schedule weeks: %d\n", len(doc.PurchaseSchedule))
	fmt.Fprintf(w, "  - Inventory projection weeks: %d\n", len(doc.InventoryProjection))
	fmt.Fprintf(w, "  - Arrival weeks: %d\n", len(doc.Arrivals))
	fmt.Fprintf(w, "  - Total POs: %d\n", doc.TotalPOs())
	fmt.Fprintf(w, "  - Consumption weeks: %d\n", len(doc.Consumption))
	fmt.Fprintf(w, "  - Total orders: %d\n", doc.TotalOrders())
	return nil
}
