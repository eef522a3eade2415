package entity

import "github.com/shopspring/decimal"

// StockRecord representa una línea de inventario de una bodega: cantidad
// actual y precio unitario. La cantidad nunca es negativa; solo el motor de
// movimientos la modifica, siempre junto con la inserción del movimiento.
type StockRecord struct {
	Code          string
	WarehouseName string
	Quantity      int64
	UnitPrice     decimal.Decimal
}
