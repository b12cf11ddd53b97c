package dto

// SupplierContact contacto del proveedor adjunto a una alerta (null si no hay vínculo).
type SupplierContact struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// LowStockAlert una alerta por par (producto, bodega) bajo el umbral con demanda reciente.
type LowStockAlert struct {
	ProductID         string           `json:"product_id"`
	ProductName       string           `json:"product_name"`
	SKU               string           `json:"sku"`
	WarehouseID       string           `json:"warehouse_id"`
	WarehouseName     string           `json:"warehouse_name"`
	CurrentStock      int64            `json:"current_stock"`
	Threshold         int64            `json:"threshold"`
	DaysUntilStockout int64            `json:"days_until_stockout"`
	Supplier          *SupplierContact `json:"supplier"`
}

// LowStockAlertsResponse respuesta del endpoint de alertas; Alerts nunca es null.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlert `json:"alerts"`
	TotalAlerts int             `json:"total_alerts"`
}
