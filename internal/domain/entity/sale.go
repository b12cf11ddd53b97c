package entity

import "time"

// Sale representa un evento de venta inmutable. CreatedAt es la marca de tiempo
// del evento y alimenta la ventana de velocidad de ventas de las alertas.
type Sale struct {
	ID          string
	ProductID   string
	WarehouseID string
	Quantity    int64
	CreatedAt   time.Time
}
