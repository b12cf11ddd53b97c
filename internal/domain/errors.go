package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto de integridad")
	ErrInvalidPrice      = errors.New("precio inválido")
	ErrWarehouseNotFound = errors.New("bodega no encontrada")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
