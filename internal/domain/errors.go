package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrStorageUnavailable = errors.New("almacén de datos no disponible")
	ErrExport             = errors.New("error al generar el reporte")
)

// InsufficientStockError rechazo de regla de negocio en salidas: la cantidad
// solicitada supera la disponible. Si el registro de stock no existe, la
// cantidad disponible se reporta como cero.
type InsufficientStockError struct {
	StockCode string
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente en %s: disponible %d, solicitado %d",
		e.StockCode, e.Available, e.Requested)
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// ConstraintError violación de integridad referencial o de unicidad.
// Err es ErrDuplicate (clave primaria repetida) o ErrNotFound (referencia colgante).
type ConstraintError struct {
	Table string
	Err   error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("violación de restricción en %s: %v", e.Table, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }
