package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/mockgen/pkg/domain/entities"
)

func TestNewMockData_WireShape(t *testing.T) {
	orderDate := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
	doc := NewMockData(
		[]entities.RollstockWidthCombination{{Rollstock: "M23", Widths: []float64{70.25, 80}}},
		[]entities.PurchaseWeek{{Week: 1, CurrentQty: 81000, RecommendedQty: 81000}},
		[]entities.InventoryWeek{{Week: 1, Low: 110000, Median: 125000, High: 140000}},
		[]entities.ArrivalWeek{
			{Week: 1},
			{Week: 3, TotalQty: 42000, POs: []entities.PurchaseOrder{{
				Number:        "PO-12345",
				Supplier:      "Acme Paper Co.",
				Rollstock:     "M23",
				Width:         70.25,
				Quantity:      42000,
				Cost:          decimal.RequireFromString("21000.456"),
				PaymentStatus: entities.Pending,
				ShipFrom:      "Memphis, TN",
				ShipTo:        "PSC Warehouse A",
				OrderDate:     orderDate,
				LeadTimeWeeks: 2,
			}}},
		},
		[]entities.ConsumptionWeek{{Week: 6, Total: 90000, Confirmed: 70000, Expected: 20000}},
	)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var generic map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &generic))
	assert.Len(t, generic, 5)
	for _, key := range CollectionKeys {
		assert.Contains(t, generic, key)
	}

	var arrivals []map[string]any
	require.NoError(t, json.Unmarshal(generic[ArrivalsKey], &arrivals))
	assert.Equal(t, []any{}, arrivals[0]["pos"], "empty pos serializes as []")

	po := arrivals[1]["pos"].([]any)[0].(map[string]any)
	assert.Equal(t, 21000.46, po["cost"])
	assert.Equal(t, "Pending", po["payment_status"])
	assert.Equal(t, "2025-11-15", po["order_date"])
	assert.Equal(t, float64(42000), po["quantity_lf"])

	var consumption []map[string]any
	require.NoError(t, json.Unmarshal(generic[ConsumptionKey], &consumption))
	assert.Equal(t, []any{}, consumption[0]["orders"])

	var projection []map[string]any
	require.NoError(t, json.Unmarshal(generic[InventoryProjectionKey], &projection))
	assert.Equal(t, float64(110000), projection[0]["p10"])
	assert.Equal(t, float64(140000), projection[0]["p90"])
}

func TestMockData_CountsAndCollections(t *testing.T) {
	doc := &MockData{
		Arrivals: []ArrivalWeek{
			{Week: 3, POs: make([]PurchaseOrder, 2)},
			{Week: 4, POs: make([]PurchaseOrder, 1)},
		},
		Consumption: []ConsumptionWeek{
			{Week: 1, Orders: make([]ConsumptionOrder, 3)},
			{Week: 2, Orders: make([]ConsumptionOrder, 2)},
		},
	}

	assert.Equal(t, 3, doc.TotalPOs())
	assert.Equal(t, 5, doc.TotalOrders())

	for _, key := range CollectionKeys {
		_, ok := doc.Collection(key)
		assert.True(t, ok, key)
	}
	_, ok := doc.Collection("orders")
	assert.False(t, ok)
}
