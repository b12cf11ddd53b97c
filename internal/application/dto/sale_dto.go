package dto

// RecordSaleRequest entrada para registrar una venta (descuenta stock de la bodega).
type RecordSaleRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	WarehouseID string `json:"warehouse_id" validate:"required"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
}

// RecordSaleResponse salida del registro de una venta.
type RecordSaleResponse struct {
	Message string `json:"message"`
	SaleID  string `json:"sale_id"`
}
