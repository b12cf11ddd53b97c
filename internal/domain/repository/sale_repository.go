package repository

import (
	"time"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale (DIP).
// Las ventas son eventos inmutables: solo se insertan y se cuentan.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	// CountByProductBetween cuenta ventas del producto con created_at en [from, to].
	CountByProductBetween(productID string, from, to time.Time) (int64, error)
}
