package inventory

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad: Commit si fn retorna nil, Rollback si no.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
		inventoryRepo repository.InventoryRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
