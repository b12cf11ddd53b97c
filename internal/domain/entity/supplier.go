package entity

import "time"

// Supplier representa un proveedor con su contacto de compras.
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SupplierProduct vincula un proveedor con un producto que surte.
// El primer vínculo por fecha de creación es el proveedor consultado en alertas.
type SupplierProduct struct {
	SupplierID string
	ProductID  string
	CreatedAt  time.Time
}
