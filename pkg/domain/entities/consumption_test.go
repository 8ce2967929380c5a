package entities

import "testing"

func TestConsumptionWeek_Totals(t *testing.T) {
	orders := []ConsumptionOrder{
		{ID: "ORD-001", Customer: "ABC Corp", Box: "Box 3", Qty: 20000, Status: "Confirmed"},
		{ID: "ORD-002", Customer: "XYZ Ltd", Box: "Box 5", Qty: 52000, Status: "Confirmed"},
	}

	week, err := NewConsumptionWeek(2, 72000, 18000, orders)
	if err != nil {
		t.Fatalf("Expected valid consumption week creation to succeed: %v", err)
	}
	if week.Total != 90000 {
		t.Errorf("Expected total 90000, got %d", week.Total)
	}
	if week.ItemizedQty() != week.Confirmed {
		t.Errorf("Expected itemized %d to equal confirmed %d", week.ItemizedQty(), week.Confirmed)
	}
}

func TestConsumptionWeek_Validation(t *testing.T) {
	testCases := []struct {
		name        string
		week        int
		confirmed   Quantity
		expected    Quantity
		orders      []ConsumptionOrder
		expectError string
	}{
		{"bad week", 0, 1, 1, nil, "week must be between 1 and 12, got 0"},
		{"negative confirmed", 1, -1, 1, nil, "confirmed cannot be negative, got -1"},
		{"negative expected", 1, 1, -1, nil, "expected cannot be negative, got -1"},
		{"missing id", 1, 10, 0, []ConsumptionOrder{{Qty: 1}}, "order id cannot be empty"},
		{"negative order", 1, 10, 0, []ConsumptionOrder{{ID: "ORD-001", Qty: -1}}, "order ORD-001: quantity cannot be negative, got -1"},
		{"over confirmed", 1, 10, 0, []ConsumptionOrder{{ID: "ORD-001", Qty: 11}}, "itemized orders 11 exceed confirmed 10"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewConsumptionWeek(tc.week, tc.confirmed, tc.expected, tc.orders)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}
