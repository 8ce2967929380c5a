package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/mockgen/pkg/application/dto"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) DemoData(ctx context.Context) (*dto.MockData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MockData), args.Error(1)
}

func testDocument() *dto.MockData {
	return &dto.MockData{
		RollstockWidthCombinations: []dto.RollstockWidths{{Rollstock: "M23", Widths: []float64{70.25}}},
		PurchaseSchedule:           []dto.PurchaseWeek{{Week: 1, CurrentQty: 81000, RecommendedQty: 81000}},
		InventoryProjection:        []dto.InventoryWeek{{Week: 1, P10: 90000, P50: 100000, P90: 110000}},
		Arrivals:                   []dto.ArrivalWeek{{Week: 1, POs: []dto.PurchaseOrder{}}},
		Consumption:                []dto.ConsumptionWeek{{Week: 1, Total: 60000, Confirmed: 45000, Expected: 15000, Orders: []dto.ConsumptionOrder{}}},
	}
}

func serve(t *testing.T, provider DemoDataProvider, target string) *httptest.ResponseRecorder {
	t.Helper()

	router := NewRouter(slog.New(slog.DiscardHandler), provider, []string{"http://localhost:5173"})
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestGetDemoData_Success(t *testing.T) {
	provider := new(MockProvider)
	provider.On("DemoData", mock.Anything).Return(testDocument(), nil)

	rr := serve(t, provider, "/api/demo-data")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))

	var got dto.MockData
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, testDocument(), &got)
	provider.AssertExpectations(t)
}

func TestGetCollection(t *testing.T) {
	for _, key := range dto.CollectionKeys {
		t.Run(key, func(t *testing.T) {
			provider := new(MockProvider)
			provider.On("DemoData", mock.Anything).Return(testDocument(), nil)

			rr := serve(t, provider, "/api/demo-data/"+key)
			require.Equal(t, http.StatusOK, rr.Code)

			var items []json.RawMessage
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
			assert.Len(t, items, 1)
		})
	}
}

func TestGetCollection_Unknown(t *testing.T) {
	provider := new(MockProvider)
	provider.On("DemoData", mock.Anything).Return(testDocument(), nil)

	rr := serve(t, provider, "/api/demo-data/shortages")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":404,"error":"Unknown collection"}`, rr.Body.String())
}

func TestGetDemoData_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"not generated", fmt.Errorf("read: %w", fs.ErrNotExist), http.StatusNotFound, "Demo data not generated yet"},
		{"broken file", errors.New("decode: unexpected EOF"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(MockProvider)
			provider.On("DemoData", mock.Anything).Return(nil, tt.err)

			rr := serve(t, provider, "/api/demo-data")

			assert.Equal(t, tt.wantCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp ErrorResponse
			require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
			assert.Equal(t, ErrorResponse{Status: tt.wantCode, Error: tt.wantBody}, resp)
		})
	}
}

func TestHealth(t *testing.T) {
	rr := serve(t, new(MockProvider), "/healthz")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}
