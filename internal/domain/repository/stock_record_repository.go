package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// StockRecordRepository define el puerto para consultar/actualizar registros de stock.
// Usado dentro de transacciones para garantizar consistencia.
type StockRecordRepository interface {
	Create(record *entity.StockRecord) error
	GetByCode(code string) (*entity.StockRecord, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Devuelve nil, nil si el registro no existe.
	GetForUpdate(code string) (*entity.StockRecord, error)
	UpdateQuantity(code string, quantity int64) error
}
