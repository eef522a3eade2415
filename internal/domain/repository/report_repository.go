package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockStatusRow estado de una línea de stock con su bodega (join stock-bodega).
type StockStatusRow struct {
	Code          string
	WarehouseName string
	Quantity      int64
	UnitPrice     decimal.Decimal
	Manager       string
	TotalValue    decimal.Decimal
}

// WarehouseSummaryRow resumen agregado por bodega.
type WarehouseSummaryRow struct {
	WarehouseName string
	Manager       string
	OperatorName  string
	StockKinds    int64
	TotalQuantity int64
	TotalValue    decimal.Decimal
}

// SupplyRelationRow relación proveedor-bodega con datos de contacto del proveedor.
type SupplyRelationRow struct {
	SupplierCode  string
	SupplierName  string
	WarehouseName string
	ContactName   string
	ContactPhone  string
}

// InboundRow asiento de entrada con el monto de la línea.
type InboundRow struct {
	Code         string
	GoodsCode    string
	GoodsName    string
	Quantity     int64
	UnitPrice    decimal.Decimal
	Date         time.Time
	SupplierName string
	Amount       decimal.Decimal
}

// OutboundRow asiento de salida con el monto de la línea.
type OutboundRow struct {
	Code      string
	GoodsCode string
	GoodsName string
	Quantity  int64
	UnitPrice decimal.Decimal
	Date      time.Time
	Amount    decimal.Decimal
}

// ReportRepository consultas de solo lectura para el estado de inventario y el
// reporte. Sin mutaciones; resultados ordenados por su clave natural para que
// el reporte sea reproducible.
type ReportRepository interface {
	StockStatus(ctx context.Context) ([]StockStatusRow, error)
	WarehouseSummaries(ctx context.Context) ([]WarehouseSummaryRow, error)
	SupplyRelations(ctx context.Context) ([]SupplyRelationRow, error)
	InboundHistory(ctx context.Context) ([]InboundRow, error)
	OutboundHistory(ctx context.Context) ([]OutboundRow, error)
}
