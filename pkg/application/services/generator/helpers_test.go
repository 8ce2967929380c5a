package generator

import (
	"time"

	"github.com/vsinha/mockgen/pkg/domain/table"
)

// scriptedSource replays queued draws and returns zero values once a queue
// is exhausted. Intn clamps queued values to n-1.
type scriptedSource struct {
	floats []float64
	ints   []int
	norms  []float64
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		return n - 1
	}
	return v
}

func (s *scriptedSource) NormFloat64() float64 {
	if len(s.norms) == 0 {
		return 0
	}
	v := s.norms[0]
	s.norms = s.norms[1:]
	return v
}

type panicSource struct{ scriptedSource }

func (panicSource) NormFloat64() float64 {
	panic("normal distribution unavailable")
}

var testNow = time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

func newTestGenerator(src Source) *Generator {
	return New(src, nil, WithClock(func() time.Time { return testNow }))
}

func inventoryTable(rows ...[]string) *table.Table {
	return table.New(
		[]string{"PO_Order_Date", "Corr_RS_Desc", "RS_desc", "Qty_Recieved", "Avg_Width", "Vendor_name", "avg_Cost_per_item_Recieved"},
		rows,
	)
}
