package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWarehouseRequest entrada para crear una bodega. El operario debe existir.
type CreateWarehouseRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=50"`
	OperatorName string `json:"operator_name" validate:"required"`
	Manager      string `json:"manager"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	Name         string    `json:"name"`
	OperatorName string    `json:"operator_name"`
	Manager      string    `json:"manager"`
	CreatedAt    time.Time `json:"created_at"`
}

// WarehouseListResponse lista de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Total int                 `json:"total"`
}

// WarehouseSummaryResponse resumen agregado de una bodega.
type WarehouseSummaryResponse struct {
	WarehouseName string          `json:"warehouse_name"`
	Manager       string          `json:"manager"`
	OperatorName  string          `json:"operator_name"`
	StockKinds    int64           `json:"stock_kinds"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
}
