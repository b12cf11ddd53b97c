package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste un evento de venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_id, warehouse_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ProductID, sale.WarehouseID, sale.Quantity, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CountByProductBetween cuenta ventas del producto con created_at en [from, to]
// (ambos límites inclusivos).
func (r *SaleRepo) CountByProductBetween(productID string, from, to time.Time) (int64, error) {
	query := `
		SELECT COUNT(*) FROM sales
		WHERE product_id = $1 AND created_at >= $2 AND created_at <= $3`
	var count int64
	err := r.q.QueryRow(context.Background(), query, productID, from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return count, nil
}
