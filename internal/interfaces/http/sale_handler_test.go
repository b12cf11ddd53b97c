package http

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

func TestSaleHandler_Record(t *testing.T) {
	s := newMemStore()
	s.products["p-1"] = &entity.Product{ID: "p-1", SKU: "LAP-001", Name: "Laptop"}
	s.skuIndex["LAP-001"] = "p-1"
	s.warehouses["wh-1"] = &entity.Warehouse{ID: "wh-1", CompanyID: "co-1", Name: "Central"}
	s.inventory[invKey("p-1", "wh-1")] = &entity.Inventory{ProductID: "p-1", WarehouseID: "wh-1", Quantity: 10}
	app := newTestApp(s)

	req := httptest.NewRequest("POST", "/api/sales", bytes.NewBufferString(
		`{"product_id":"p-1","warehouse_id":"wh-1","quantity":4}`,
	))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var out dto.RecordSaleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.SaleID)
	assert.Equal(t, int64(6), s.inventory[invKey("p-1", "wh-1")].Quantity)
	require.Len(t, s.sales, 1)
}

func TestSaleHandler_StockInsuficiente(t *testing.T) {
	s := newMemStore()
	s.products["p-1"] = &entity.Product{ID: "p-1", SKU: "LAP-001", Name: "Laptop"}
	s.skuIndex["LAP-001"] = "p-1"
	s.warehouses["wh-1"] = &entity.Warehouse{ID: "wh-1", CompanyID: "co-1", Name: "Central"}
	s.inventory[invKey("p-1", "wh-1")] = &entity.Inventory{ProductID: "p-1", WarehouseID: "wh-1", Quantity: 2}
	app := newTestApp(s)

	req := httptest.NewRequest("POST", "/api/sales", bytes.NewBufferString(
		`{"product_id":"p-1","warehouse_id":"wh-1","quantity":5}`,
	))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", decodeError(t, resp.Body).Code)
	assert.Equal(t, int64(2), s.inventory[invKey("p-1", "wh-1")].Quantity)
	assert.Empty(t, s.sales)
}

func TestSaleHandler_ProductoInexistente(t *testing.T) {
	app := newTestApp(newMemStore())

	req := httptest.NewRequest("POST", "/api/sales", bytes.NewBufferString(
		`{"product_id":"p-x","warehouse_id":"wh-x","quantity":1}`,
	))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp.Body).Code)
}
