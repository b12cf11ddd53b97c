package entity

import "time"

// Company representa una empresa dueña de bodegas e inventario.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
