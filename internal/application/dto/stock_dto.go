package dto

import "github.com/shopspring/decimal"

// CreateStockRecordRequest entrada para crear un registro de stock.
// Quantity y UnitPrice toman los defaults del esquema (0 y 0.00) si se omiten.
type CreateStockRecordRequest struct {
	Code          string           `json:"code" validate:"required,min=1,max=20"`
	WarehouseName string           `json:"warehouse_name" validate:"required"`
	Quantity      int64            `json:"quantity" validate:"min=0"`
	UnitPrice     *decimal.Decimal `json:"unit_price,omitempty"`
}

// StockRecordResponse salida de un registro de stock.
type StockRecordResponse struct {
	Code          string          `json:"code"`
	WarehouseName string          `json:"warehouse_name"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
}

// StockStatusResponse línea del estado de inventario (join con bodega).
type StockStatusResponse struct {
	Code          string          `json:"code"`
	WarehouseName string          `json:"warehouse_name"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Manager       string          `json:"manager"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// StockStatusListResponse estado de inventario completo.
type StockStatusListResponse struct {
	Items []StockStatusResponse `json:"items"`
	Total int                   `json:"total"`
}
