package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OutboundTransaction representa una salida de mercancía. Solo se registra si
// la cantidad disponible alcanza; el asiento y el decremento de stock se
// confirman juntos o no se confirma ninguno.
type OutboundTransaction struct {
	Code      string
	StockCode string
	GoodsCode string
	Quantity  int64
	GoodsName string
	Date      time.Time
	UnitPrice decimal.Decimal
}
