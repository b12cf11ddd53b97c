package repository

import "github.com/jhoicas/stock-alerts-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	// ListByCompany devuelve todas las bodegas de la empresa en orden estable
	// (created_at ascendente); el orden determina el orden de las alertas.
	ListByCompany(companyID string) ([]*entity.Warehouse, error)
}
