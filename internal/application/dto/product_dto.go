package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-alerts-api/internal/domain"
)

// CreateProductRequest entrada para crear un producto con stock inicial opcional.
// Los campos obligatorios son punteros y Price es JSON crudo para distinguir
// "campo ausente" de "campo enviado como null".
type CreateProductRequest struct {
	Name              *string         `json:"name"`
	SKU               *string         `json:"sku"`
	Price             json.RawMessage `json:"price"`
	WarehouseID       *string         `json:"warehouse_id"`
	InitialQuantity   *int64          `json:"initial_quantity"`
	LowStockThreshold *int64          `json:"low_stock_threshold"`
}

// MissingFields devuelve los nombres de los campos obligatorios ausentes,
// en el orden name, sku, price. Un obligatorio enviado como null cuenta como ausente,
// salvo price, que se reporta después como precio inválido.
func (r CreateProductRequest) MissingFields() []string {
	var missing []string
	if r.Name == nil || *r.Name == "" {
		missing = append(missing, "name")
	}
	if r.SKU == nil || *r.SKU == "" {
		missing = append(missing, "sku")
	}
	if len(r.Price) == 0 {
		missing = append(missing, "price")
	}
	return missing
}

// ParsedPrice interpreta price como decimal exacto (acepta número o cadena numérica).
// Devuelve domain.ErrInvalidPrice si es null, no numérico o negativo.
func (r CreateProductRequest) ParsedPrice() (decimal.Decimal, error) {
	// decimal.UnmarshalJSON acepta null dejando el valor en cero; aquí null es inválido.
	if len(r.Price) == 0 || string(r.Price) == "null" {
		return decimal.Decimal{}, domain.ErrInvalidPrice
	}
	var price decimal.Decimal
	if err := json.Unmarshal(r.Price, &price); err != nil {
		return decimal.Decimal{}, domain.ErrInvalidPrice
	}
	if price.IsNegative() {
		return decimal.Decimal{}, domain.ErrInvalidPrice
	}
	return price, nil
}

// CreateProductResponse salida de la creación de un producto.
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"product_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                string          `json:"id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
