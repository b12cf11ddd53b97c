package repository

import "github.com/jhoicas/stock-alerts-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para Inventory (DIP).
// Una fila por par (product_id, warehouse_id); la unicidad la garantiza el store.
type InventoryRepository interface {
	Create(inv *entity.Inventory) error
	Get(productID, warehouseID string) (*entity.Inventory, error)
	// GetForUpdate obtiene la fila y la bloquea (SELECT FOR UPDATE) dentro de una tx.
	GetForUpdate(productID, warehouseID string) (*entity.Inventory, error)
	UpdateQuantity(inv *entity.Inventory) error
	// ListByWarehouse devuelve las filas de la bodega en orden estable (created_at ascendente).
	ListByWarehouse(warehouseID string) ([]*entity.Inventory, error)
}
