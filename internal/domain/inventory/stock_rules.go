package inventory

import "github.com/shopspring/decimal"

// TotalValue calcula el valor total de una línea de stock (servicio de dominio).
// ValorTotal = Cantidad * PrecioUnitario
func TotalValue(quantity int64, unitPrice decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(quantity).Mul(unitPrice)
}

// CanIssue verifica la regla de salida: la cantidad disponible debe cubrir la
// solicitada. Un registro de stock inexistente cuenta como disponible cero.
func CanIssue(available, requested int64) bool {
	return requested > 0 && available >= requested
}
