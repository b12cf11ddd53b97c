package entity

import "time"

// Inventory representa el stock actual de un producto en una bodega.
// Una sola fila por par (product_id, warehouse_id); Quantity nunca baja de cero.
type Inventory struct {
	ProductID   string
	WarehouseID string
	Quantity    int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
