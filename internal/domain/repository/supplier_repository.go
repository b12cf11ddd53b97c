package repository

import "github.com/jhoicas/stock-alerts-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	// Link vincula un proveedor con un producto que surte.
	Link(supplierID, productID string) error
	// GetFirstByProduct devuelve el proveedor del primer vínculo del producto
	// (por fecha de creación) o nil si el producto no tiene proveedor.
	GetFirstByProduct(productID string) (*entity.Supplier, error)
}
