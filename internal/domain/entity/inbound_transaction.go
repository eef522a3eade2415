package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InboundTransaction representa una entrada de mercancía: un asiento inmutable
// del libro de movimientos, emparejado con el incremento de stock.
// SupplierName se guarda desnormalizado (sin FK), como en el esquema original.
type InboundTransaction struct {
	Code         string
	StockCode    string
	GoodsCode    string
	Quantity     int64
	GoodsName    string
	Date         time.Time
	UnitPrice    decimal.Decimal
	SupplierName string
}
