package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// RecordSaleUseCase registra un evento de venta y descuenta el stock de la bodega
// en una sola transacción, con bloqueo de fila (SELECT FOR UPDATE).
type RecordSaleUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewRecordSaleUseCase construye el caso de uso.
func NewRecordSaleUseCase(txRunner TxRunner, productRepo repository.ProductRepository, warehouseRepo repository.WarehouseRepository) *RecordSaleUseCase {
	return &RecordSaleUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Record valida producto y bodega, bloquea la fila de inventario, verifica
// stock suficiente, descuenta la cantidad y guarda la venta. Commit o Rollback.
func (uc *RecordSaleUseCase) Record(ctx context.Context, in dto.RecordSaleRequest) (string, error) {
	if in.ProductID == "" || in.WarehouseID == "" || in.Quantity <= 0 {
		return "", domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return "", err
	}
	if warehouse == nil {
		return "", domain.ErrNotFound
	}

	now := time.Now()
	saleID := uuid.New().String()

	err = uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		_ repository.WarehouseRepository,
		inventoryRepo repository.InventoryRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Bloquea la fila de inventario para evitar descuentos concurrentes.
		inv, err := inventoryRepo.GetForUpdate(in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		if inv == nil || inv.Quantity < in.Quantity {
			return domain.ErrInsufficientStock
		}
		inv.Quantity -= in.Quantity
		inv.UpdatedAt = now
		if err := inventoryRepo.UpdateQuantity(inv); err != nil {
			return err
		}
		return saleRepo.Create(&entity.Sale{
			ID:          saleID,
			ProductID:   in.ProductID,
			WarehouseID: in.WarehouseID,
			Quantity:    in.Quantity,
			CreatedAt:   now,
		})
	})
	if err != nil {
		return "", err
	}
	return saleID, nil
}
