package alerts

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// LowStockAlertUseCase calcula las alertas de stock bajo de una empresa:
// pares (producto, bodega) bajo el umbral del producto y con ventas recientes,
// anotados con la estimación de días hasta quiebre y el contacto del proveedor.
type LowStockAlertUseCase struct {
	warehouseRepo repository.WarehouseRepository
	inventoryRepo repository.InventoryRepository
	productRepo   repository.ProductRepository
	saleRepo      repository.SaleRepository
	supplierRepo  repository.SupplierRepository
	windowDays    int64
	now           func() time.Time
}

// NewLowStockAlertUseCase construye el caso de uso. windowDays es la ventana de
// ventas y el divisor del promedio diario (30 por defecto en config); now es el
// reloj inyectado para que la ventana sea determinista en tests.
func NewLowStockAlertUseCase(
	warehouseRepo repository.WarehouseRepository,
	inventoryRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	supplierRepo repository.SupplierRepository,
	windowDays int64,
	now func() time.Time,
) *LowStockAlertUseCase {
	return &LowStockAlertUseCase{
		warehouseRepo: warehouseRepo,
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
		saleRepo:      saleRepo,
		supplierRepo:  supplierRepo,
		windowDays:    windowDays,
		now:           now,
	}
}

// Generate recorre bodegas e inventario de la empresa y arma la lista de alertas.
// Una empresa sin bodegas produce la lista vacía, nunca error; datos enlazados
// ausentes (producto borrado, producto sin proveedor) se omiten o van en null.
func (uc *LowStockAlertUseCase) Generate(ctx context.Context, companyID string) (*dto.LowStockAlertsResponse, error) {
	now := uc.now()
	windowStart := now.AddDate(0, 0, -int(uc.windowDays))
	divisor := decimal.NewFromInt(uc.windowDays)

	warehouses, err := uc.warehouseRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.LowStockAlert, 0)
	for _, warehouse := range warehouses {
		rows, err := uc.inventoryRepo.ListByWarehouse(warehouse.ID)
		if err != nil {
			return nil, err
		}
		for _, inv := range rows {
			product, err := uc.productRepo.GetByID(inv.ProductID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				// Fila de inventario huérfana: dato obsoleto, no es error.
				continue
			}
			if inv.Quantity >= product.LowStockThreshold {
				continue
			}

			// Ventana de ventas [now-windowDays, now], límite inferior inclusivo.
			salesCount, err := uc.saleRepo.CountByProductBetween(product.ID, windowStart, now)
			if err != nil {
				return nil, err
			}
			if salesCount == 0 {
				// Sin señal de demanda reciente: no hay nada que estimar.
				continue
			}

			avgDailySales := decimal.NewFromInt(salesCount).Div(divisor)
			if avgDailySales.IsZero() {
				// Guarda contra división por cero; con salesCount >= 1 y divisor fijo
				// no ocurre, pero la ventana es configurable.
				continue
			}
			daysUntilStockout := decimal.NewFromInt(inv.Quantity).Div(avgDailySales).IntPart()

			supplier, err := uc.supplierRepo.GetFirstByProduct(product.ID)
			if err != nil {
				return nil, err
			}
			var contact *dto.SupplierContact
			if supplier != nil {
				contact = &dto.SupplierContact{
					ID:           supplier.ID,
					Name:         supplier.Name,
					ContactEmail: supplier.ContactEmail,
				}
			}

			alerts = append(alerts, dto.LowStockAlert{
				ProductID:         product.ID,
				ProductName:       product.Name,
				SKU:               product.SKU,
				WarehouseID:       warehouse.ID,
				WarehouseName:     warehouse.Name,
				CurrentStock:      inv.Quantity,
				Threshold:         product.LowStockThreshold,
				DaysUntilStockout: daysUntilStockout,
				Supplier:          contact,
			})
		}
	}

	return &dto.LowStockAlertsResponse{Alerts: alerts, TotalAlerts: len(alerts)}, nil
}
