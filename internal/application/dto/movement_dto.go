package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProcessInboundRequest body para POST /api/inventory/inbound.
type ProcessInboundRequest struct {
	Code         string          `json:"code" validate:"required"`
	StockCode    string          `json:"stock_code" validate:"required"`
	GoodsCode    string          `json:"goods_code"`
	Quantity     int64           `json:"quantity" validate:"required,gt=0"`
	GoodsName    string          `json:"goods_name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	SupplierName string          `json:"supplier_name"`
}

// ProcessOutboundRequest body para POST /api/inventory/outbound.
type ProcessOutboundRequest struct {
	Code      string          `json:"code" validate:"required"`
	StockCode string          `json:"stock_code" validate:"required"`
	GoodsCode string          `json:"goods_code"`
	Quantity  int64           `json:"quantity" validate:"required,gt=0"`
	GoodsName string          `json:"goods_name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// MovementResponse resultado de un movimiento confirmado.
type MovementResponse struct {
	Code        string `json:"code"`
	StockCode   string `json:"stock_code"`
	NewQuantity int64  `json:"new_quantity"`
}

// InboundRecordResponse asiento de entrada para listados y reporte.
type InboundRecordResponse struct {
	Code         string          `json:"code"`
	GoodsCode    string          `json:"goods_code"`
	GoodsName    string          `json:"goods_name"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Date         time.Time       `json:"date"`
	SupplierName string          `json:"supplier_name"`
	Amount       decimal.Decimal `json:"amount"`
}

// OutboundRecordResponse asiento de salida para listados y reporte.
type OutboundRecordResponse struct {
	Code      string          `json:"code"`
	GoodsCode string          `json:"goods_code"`
	GoodsName string          `json:"goods_name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
}
