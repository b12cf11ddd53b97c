package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo (multi-bodega).
// El stock se maneja por bodega en Inventory; LowStockThreshold es el piso
// bajo el cual el producto entra en la lista de alertas.
type Product struct {
	ID                string
	SKU               string // código único global
	Name              string
	Price             decimal.Decimal // precio de venta, nunca negativo
	LowStockThreshold int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
