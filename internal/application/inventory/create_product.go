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

// CreateProductUseCase crea un producto y, si se indica bodega, su fila de
// inventario inicial, todo dentro de una sola transacción (Commit/Rollback).
type CreateProductUseCase struct {
	txRunner         TxRunner
	productRepo      repository.ProductRepository
	defaultThreshold int64
}

// NewCreateProductUseCase construye el caso de uso. defaultThreshold aplica
// cuando el payload no trae low_stock_threshold.
func NewCreateProductUseCase(txRunner TxRunner, productRepo repository.ProductRepository, defaultThreshold int64) *CreateProductUseCase {
	return &CreateProductUseCase{
		txRunner:         txRunner,
		productRepo:      productRepo,
		defaultThreshold: defaultThreshold,
	}
}

// Create valida y persiste el producto. El orden de validación es fijo:
// SKU duplicado → precio → cantidad inicial; luego la secuencia de escritura
// transaccional: insert producto, lookup bodega (si aplica, su ausencia aborta
// toda la tx y no persiste nada), insert inventario, commit.
// Errores: domain.ErrDuplicate (pre-chequeo de SKU), domain.ErrInvalidPrice,
// domain.ErrInvalidInput (cantidad inicial negativa), domain.ErrWarehouseNotFound,
// domain.ErrConflict (violación de unicidad al escribir, ej. carrera sobre el SKU).
func (uc *CreateProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (string, error) {
	existing, err := uc.productRepo.GetBySKU(*in.SKU)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.ErrDuplicate
	}

	price, err := in.ParsedPrice()
	if err != nil {
		return "", err
	}

	var initialQty int64
	if in.InitialQuantity != nil {
		initialQty = *in.InitialQuantity
	}
	if initialQty < 0 {
		return "", domain.ErrInvalidInput
	}

	threshold := uc.defaultThreshold
	if in.LowStockThreshold != nil && *in.LowStockThreshold >= 0 {
		threshold = *in.LowStockThreshold
	}

	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		SKU:               *in.SKU,
		Name:              *in.Name,
		Price:             price,
		LowStockThreshold: threshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
		inventoryRepo repository.InventoryRepository,
		_ repository.SaleRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		// El inventario inicial es opcional y por bodega.
		if in.WarehouseID == nil {
			return nil
		}
		warehouse, err := warehouseRepo.GetByID(*in.WarehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrWarehouseNotFound
		}
		return inventoryRepo.Create(&entity.Inventory{
			ProductID:   product.ID,
			WarehouseID: warehouse.ID,
			Quantity:    initialQty,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	})
	if err != nil {
		return "", err
	}
	return product.ID, nil
}
